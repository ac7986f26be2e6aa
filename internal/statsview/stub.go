//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch reports that the stats server was not compiled in.
func Launch(addr string, output io.Writer) {
	fmt.Fprintln(output, "stats server not available: rebuild with -tags statsview")
}

func Available() bool { return false }
