// Package driver implements the skslc batch command line: it splits the
// argument vector into jobs, applies embedded settings directives and
// dispatches each job to the toolchain emitter selected by the output
// file's extension. Jobs run strictly in order and every failure stays
// local to its job; the batch result is the worst per-job outcome.
package driver

import (
	"io"
	"os"

	"github.com/vs-ude/skslc/internal/backends/backend"
)

// Driver runs batched compile jobs against a toolchain.
type Driver struct {
	toolchain backend.Toolchain
	out       io.Writer
}

// New constructs a driver that prints diagnostics to stdout.
func New(t backend.Toolchain) *Driver {
	return NewWithOutput(t, os.Stdout)
}

// NewWithOutput constructs a driver with a custom diagnostics sink.
func NewWithOutput(t backend.Toolchain, out io.Writer) *Driver {
	return &Driver{toolchain: t, out: out}
}
