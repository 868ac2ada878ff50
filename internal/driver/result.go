package driver

// ResultCode classifies the outcome of one compile job. The numeric order
// doubles as a severity order: compilation errors are expected to occur
// under normal test-suite operation and therefore rank below input and
// output errors, which are not expected at all during a build.
type ResultCode int

const (
	// Success ...
	Success ResultCode = iota
	// CompileError indicates the toolchain rejected the program.
	CompileError
	// InputError indicates a malformed command line, an unreadable or
	// unclassifiable input file, or an unrecognized directive token.
	InputError
	// OutputError indicates the output artifact could not be created or
	// finalized.
	OutputError
)

// Worst returns the more severe of two result codes. It is the fold used
// to aggregate a batch into a single exit status.
func Worst(a, b ResultCode) ResultCode {
	if b > a {
		return b
	}
	return a
}

func (r ResultCode) String() string {
	switch r {
	case Success:
		return "success"
	case CompileError:
		return "compile error"
	case InputError:
		return "input error"
	case OutputError:
		return "output error"
	}
	return "unknown"
}
