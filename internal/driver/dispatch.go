package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vs-ude/skslc/internal/config"
	"github.com/vs-ude/skslc/internal/sksl"
)

// outputHandlers is the fixed table routing output extensions to
// emission operations.
var outputHandlers = []struct {
	ext  string
	emit func(d *Driver, job *Job, source string, settings sksl.Settings) ResultCode
}{
	{".spirv", (*Driver).emitSPIRV},
	{".glsl", (*Driver).emitGLSL},
	{".metal", (*Driver).emitMetal},
	{".h", (*Driver).emitH},
	{".cpp", (*Driver).emitCPP},
	{".dehydrated.sksl", (*Driver).emitDehydrated},
}

// dispatch routes a parsed job to the emitter matching its output
// extension. An unrecognized extension fails before the output path is
// ever opened.
func (d *Driver) dispatch(job *Job, source string, settings sksl.Settings) ResultCode {
	for _, h := range outputHandlers {
		if strings.HasSuffix(job.OutputPath, h.ext) {
			return h.emit(d, job, source, settings)
		}
	}
	fmt.Fprintf(d.out, "expected output filename to end with '.spirv', '.glsl', '.metal', '.h', '.cpp', or '.dehydrated.sksl'\n")
	return InputError
}

// createArtifact opens compiler output files. It is a variable so tests
// can inject artifact write failures.
var createArtifact = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// compileTo runs the parse step and one emitter against a freshly
// created artifact. When parsing or emission fails, the artifact is
// replaced by an error report so a failed job still leaves something
// inspectable behind.
func (d *Driver) compileTo(job *Job, source string, settings sksl.Settings, emit func(*sksl.Program, io.Writer) error) ResultCode {
	out, err := createArtifact(job.OutputPath)
	if err != nil {
		fmt.Fprintf(d.out, "error writing '%s'\n", job.OutputPath)
		return OutputError
	}
	program, err := d.toolchain.Parse(job.Kind, source, settings)
	if err == nil {
		err = emit(program, out)
	}
	if err != nil {
		d.emitCompileError(out, job.OutputPath, err.Error())
		return CompileError
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(d.out, "error writing '%s'\n", job.OutputPath)
		return OutputError
	}
	return Success
}

// emitCompileError overwrites the compiler output, if any, with an error
// message, and echoes the message to the terminal.
func (d *Driver) emitCompileError(out io.Closer, outputPath string, errorText string) {
	out.Close()
	if errorStream, err := os.Create(outputPath); err == nil {
		errorStream.WriteString("### Compilation failed:\n\n")
		errorStream.WriteString(errorText + "\n")
		errorStream.Close()
	}
	fmt.Fprintln(d.out, errorText)
}

func (d *Driver) emitSPIRV(job *Job, source string, settings sksl.Settings) ResultCode {
	return d.compileTo(job, source, settings, d.toolchain.ToSPIRV)
}

func (d *Driver) emitGLSL(job *Job, source string, settings sksl.Settings) ResultCode {
	return d.compileTo(job, source, settings, d.toolchain.ToGLSL)
}

func (d *Driver) emitMetal(job *Job, source string, settings sksl.Settings) ResultCode {
	return d.compileTo(job, source, settings, d.toolchain.ToMetal)
}

// emitH generates a component header. Generated components never replace
// their settings block, and their symbol name derives from the input
// path; an input that does not look like a component yields an empty
// name, which is passed through unchanged.
func (d *Driver) emitH(job *Job, source string, settings sksl.Settings) ResultCode {
	settings.ReplaceSettings = false
	base := baseName(job.InputPath, "Gr", ".fp")
	return d.compileTo(job, source, settings, func(p *sksl.Program, w io.Writer) error {
		return d.toolchain.ToH(p, base, w)
	})
}

// emitCPP generates a component implementation; see emitH.
func (d *Driver) emitCPP(job *Job, source string, settings sksl.Settings) ResultCode {
	settings.ReplaceSettings = false
	base := baseName(job.InputPath, "Gr", ".fp")
	return d.compileTo(job, source, settings, func(p *sksl.Program, w io.Writer) error {
		return d.toolchain.ToCPP(p, base, w)
	})
}

// emitDehydrated loads the input as a shared module, without a
// program-level parse, and re-encodes its serialized form as a byte
// array literal named after the input file.
func (d *Driver) emitDehydrated(job *Job, source string, settings sksl.Settings) ResultCode {
	out, err := createArtifact(job.OutputPath)
	if err != nil {
		fmt.Fprintf(d.out, "error writing '%s'\n", job.OutputPath)
		return OutputError
	}
	module, err := d.toolchain.LoadModule(job.Kind, config.ResolveModulePath(job.InputPath))
	var data []byte
	if err == nil {
		data, err = d.toolchain.Dehydrate(module)
	}
	if err != nil {
		d.emitCompileError(out, job.OutputPath, err.Error())
		return CompileError
	}
	base := baseName(job.InputPath, "", ".sksl")
	if err := writeByteArray(out, base, data); err != nil {
		fmt.Fprintf(d.out, "error writing '%s'\n", job.OutputPath)
		return OutputError
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(d.out, "error writing '%s'\n", job.OutputPath)
		return OutputError
	}
	return Success
}

// writeByteArray re-encodes serialized module data as a C array literal
// plus a length constant.
func writeByteArray(w io.Writer, name string, data []byte) error {
	if _, err := fmt.Fprintf(w, "static uint8_t SKSL_INCLUDE_%s[] = {", name); err != nil {
		return err
	}
	for i, b := range data {
		prefix := ""
		if i%16 == 0 {
			prefix = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s%d,", prefix, b); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "};\nstatic constexpr size_t SKSL_INCLUDE_%s_LENGTH = sizeof(SKSL_INCLUDE_%s);\n", name, name)
	return err
}
