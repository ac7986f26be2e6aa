// Package statsview serves live runtime charts (heap, goroutines, GC) for a
// running emulator. The server is only compiled in with the statsview build
// tag:
//
//	go build -tags statsview ./cmd/gbemu
//
// Once launched the charts are at http://<addr>/debug/statsview and pprof at
// http://<addr>/debug/pprof/.
package statsview

// DefaultAddress is used when Launch gets an empty address.
const DefaultAddress = "localhost:12600"
