package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnimplementedOpcode matches every *OpcodeError via errors.Is.
var ErrUnimplementedOpcode = errors.New("unimplemented opcode")

// OpcodeError identifies an opcode that has no handler and where it was fetched.
type OpcodeError struct {
	Opcode   byte
	Prefixed bool // opcode came from the 0xCB space
	PC       uint16
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unimplemented opcode CB %02X at PC=%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unimplemented opcode %02X at PC=%04X", e.Opcode, e.PC)
}

func (e *OpcodeError) Is(target error) bool { return target == ErrUnimplementedOpcode }
