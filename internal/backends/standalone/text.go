package standalone

import (
	"fmt"
	"io"

	"github.com/vs-ude/skslc/internal/sksl"
)

// emitWriter keeps the first write error so the emitters can print
// without checking every call.
type emitWriter struct {
	w   io.Writer
	err error
}

func (e *emitWriter) printf(format string, args ...interface{}) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

// ToGLSL writes the program as GLSL text: a preamble derived from the
// selected capability profile, followed by the source.
func (t *Toolchain) ToGLSL(p *sksl.Program, w io.Writer) error {
	c := p.Settings.Caps
	ew := &emitWriter{w: w}
	ew.printf("#version %s\n", c.GLSLVersionDecl)
	if p.Kind == sksl.KindGeometry && c.GeometryShaderExtension != "" {
		ew.printf("#extension %s : require\n", c.GeometryShaderExtension)
	}
	if p.Kind == sksl.KindFragment && c.ShaderDerivativeExtension != "" {
		ew.printf("#extension %s : require\n", c.ShaderDerivativeExtension)
	}
	if c.UsesPrecisionModifiers {
		precision := t.conf.FloatPrecision
		if p.Settings.ForceHighPrecision {
			precision = "highp"
		}
		ew.printf("precision %s float;\n", precision)
	}
	ew.printf("%s", p.Source)
	return ew.err
}

// ToMetal writes the program as Metal text.
func (t *Toolchain) ToMetal(p *sksl.Program, w io.Writer) error {
	ew := &emitWriter{w: w}
	ew.printf("#include <metal_stdlib>\n")
	ew.printf("#include <simd/simd.h>\n")
	ew.printf("using namespace metal;\n")
	ew.printf("%s", p.Source)
	return ew.err
}
