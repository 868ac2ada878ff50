package driver

import (
	"fmt"
	"strings"

	"github.com/vs-ude/skslc/internal/sksl"
)

// Job describes one unit of work in a batched invocation. It is built
// once from a job's argument slice and never modified afterwards.
type Job struct {
	InputPath  string
	OutputPath string
	Kind       sksl.ProgramKind

	// HonorSettings controls whether an embedded settings directive in
	// the source is applied or ignored.
	HonorSettings bool
}

// stageKinds classifies input paths. The table is ordered, although no
// two entries can match the same path.
var stageKinds = []struct {
	ext  string
	kind sksl.ProgramKind
}{
	{".vert", sksl.KindVertex},
	{".frag", sksl.KindFragment},
	{".geom", sksl.KindGeometry},
	{".fp", sksl.KindFragmentProcessor},
	{".stage", sksl.KindPipelineStage},
	{".sksl", sksl.KindFragment},
}

func stageKindFor(path string) (sksl.ProgramKind, bool) {
	for _, s := range stageKinds {
		if strings.HasSuffix(path, s.ext) {
			return s.kind, true
		}
	}
	return 0, false
}

// buildJob validates one job's argument slice. args[0] is the program
// name and is never inspected. No file I/O happens here.
func (d *Driver) buildJob(args []string) (*Job, ResultCode) {
	honorSettings := true
	if len(args) == 4 {
		// Handle the four-argument case: `skslc in.sksl out.glsl --settings`
		switch args[3] {
		case "--settings":
			honorSettings = true
		case "--nosettings":
			honorSettings = false
		default:
			fmt.Fprintf(d.out, "unrecognized flag: %s\n\n", args[3])
			d.printUsage()
			return nil, InputError
		}
	} else if len(args) != 3 {
		d.printUsage()
		return nil, InputError
	}

	kind, ok := stageKindFor(args[1])
	if !ok {
		fmt.Fprintf(d.out, "input filename must end in '.vert', '.frag', '.geom', '.fp', '.stage', or '.sksl'\n")
		return nil, InputError
	}
	return &Job{
		InputPath:     args[1],
		OutputPath:    args[2],
		Kind:          kind,
		HonorSettings: honorSettings,
	}, Success
}

// baseName returns the "base name" of a file path, given an expected
// filename prefix and suffix. For example, src/effects/GrFooProcessor.fp
// with prefix "Gr" and suffix ".fp" yields "FooProcessor". If either does
// not match, the result is the empty string.
func baseName(path, prefix, suffix string) string {
	name := path
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		name = path[i+1:]
	}
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return ""
	}
	if len(name) < len(prefix)+len(suffix) {
		return ""
	}
	return name[len(prefix) : len(name)-len(suffix)]
}
