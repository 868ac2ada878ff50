package backend

import (
	"io"

	"github.com/vs-ude/skslc/internal/sksl"
)

// Toolchain is the interface compiler backends have to follow in order to
// be usable by the batch driver. The driver never inspects a Program or
// Module; it only routes them between Parse/LoadModule and the emitters.
type Toolchain interface {
	// Parse turns source text into a program, or returns a diagnostic error.
	Parse(kind sksl.ProgramKind, source string, settings sksl.Settings) (*sksl.Program, error)

	// ToSPIRV writes the program as a SPIR-V binary module.
	ToSPIRV(p *sksl.Program, w io.Writer) error
	// ToGLSL writes the program as GLSL text.
	ToGLSL(p *sksl.Program, w io.Writer) error
	// ToMetal writes the program as Metal text.
	ToMetal(p *sksl.Program, w io.Writer) error
	// ToH writes a component header. baseName names the generated
	// component and may be empty.
	ToH(p *sksl.Program, baseName string, w io.Writer) error
	// ToCPP writes a component implementation. baseName names the
	// generated component and may be empty.
	ToCPP(p *sksl.Program, baseName string, w io.Writer) error

	// LoadModule loads a shared module file without a program-level parse.
	LoadModule(kind sksl.ProgramKind, path string) (*sksl.Module, error)
	// Dehydrate serializes a loaded module into an opaque byte buffer.
	Dehydrate(m *sksl.Module) ([]byte, error)
}
