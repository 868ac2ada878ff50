package driver

import (
	"io"

	"github.com/vs-ude/skslc/internal/sksl"
)

// fakeToolchain is a deterministic toolchain for driver tests. Failures
// are injected through the err fields; calls and arguments are recorded.
type fakeToolchain struct {
	parseErr  error
	emitErr   error
	moduleErr error

	parseCalls   int
	parsedPaths  []string
	lastKind     sksl.ProgramKind
	lastSettings sksl.Settings
	lastBaseName string
}

func (f *fakeToolchain) Parse(kind sksl.ProgramKind, source string, settings sksl.Settings) (*sksl.Program, error) {
	f.parseCalls++
	f.parsedPaths = append(f.parsedPaths, source)
	f.lastKind = kind
	f.lastSettings = settings
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return &sksl.Program{Kind: kind, Source: source, Settings: settings}, nil
}

func (f *fakeToolchain) emit(w io.Writer, what string) error {
	if f.emitErr != nil {
		return f.emitErr
	}
	_, err := w.Write([]byte(what + "\n"))
	return err
}

func (f *fakeToolchain) ToSPIRV(p *sksl.Program, w io.Writer) error {
	return f.emit(w, "spirv")
}

func (f *fakeToolchain) ToGLSL(p *sksl.Program, w io.Writer) error {
	return f.emit(w, "glsl")
}

func (f *fakeToolchain) ToMetal(p *sksl.Program, w io.Writer) error {
	return f.emit(w, "metal")
}

func (f *fakeToolchain) ToH(p *sksl.Program, baseName string, w io.Writer) error {
	f.lastBaseName = baseName
	return f.emit(w, "h")
}

func (f *fakeToolchain) ToCPP(p *sksl.Program, baseName string, w io.Writer) error {
	f.lastBaseName = baseName
	return f.emit(w, "cpp")
}

func (f *fakeToolchain) LoadModule(kind sksl.ProgramKind, path string) (*sksl.Module, error) {
	f.lastKind = kind
	if f.moduleErr != nil {
		return nil, f.moduleErr
	}
	return &sksl.Module{
		Name:     "module",
		Symbols:  []string{"sym"},
		Elements: []string{"in half4 sym;"},
	}, nil
}

func (f *fakeToolchain) Dehydrate(m *sksl.Module) ([]byte, error) {
	return []byte{1, 2, 3}, nil
}
