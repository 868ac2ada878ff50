package standalone

import (
	"io"

	"github.com/vs-ude/skslc/internal/sksl"
)

const generatedBanner = "/* This file was autogenerated; do not modify. */\n"

// ToH writes the header of a generated fragment-processor component.
// baseName may be empty when the input path did not look like a
// component source; the generated class is then anonymous-prefixed.
func (t *Toolchain) ToH(p *sksl.Program, baseName string, w io.Writer) error {
	class := "Gr" + baseName
	ew := &emitWriter{w: w}
	ew.printf(generatedBanner)
	ew.printf("#ifndef %s_DEFINED\n#define %s_DEFINED\n\n", class, class)
	ew.printf("#include \"GrFragmentProcessor.h\"\n\n")
	ew.printf("class %s : public GrFragmentProcessor {\n", class)
	ew.printf("public:\n")
	ew.printf("    static std::unique_ptr<GrFragmentProcessor> Make();\n")
	ew.printf("    const char* name() const override { return \"%s\"; }\n", class)
	ew.printf("private:\n")
	ew.printf("    %s();\n", class)
	ew.printf("    typedef GrFragmentProcessor INHERITED;\n")
	ew.printf("};\n\n")
	ew.printf("#endif\n")
	return ew.err
}

// ToCPP writes the implementation of a generated fragment-processor
// component.
func (t *Toolchain) ToCPP(p *sksl.Program, baseName string, w io.Writer) error {
	class := "Gr" + baseName
	ew := &emitWriter{w: w}
	ew.printf(generatedBanner)
	ew.printf("#include \"%s.h\"\n\n", class)
	ew.printf("%s::%s() {}\n\n", class, class)
	ew.printf("std::unique_ptr<GrFragmentProcessor> %s::Make() {\n", class)
	ew.printf("    return std::unique_ptr<GrFragmentProcessor>(new %s());\n", class)
	ew.printf("}\n\n")
	ew.printf("// Original program:\n")
	writeLineComments(ew, p.Source)
	return ew.err
}

func writeLineComments(ew *emitWriter, text string) {
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) && start == i {
			break
		}
		if i == len(text) || text[i] == '\n' {
			ew.printf("// %s\n", text[start:i])
			start = i + 1
		}
	}
}
