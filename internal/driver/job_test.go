package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vs-ude/skslc/internal/sksl"
)

func TestBuildJobArgumentShapes(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		rc    ResultCode
		honor bool
	}{
		{"three args", []string{"skslc", "in.frag", "out.glsl"}, Success, true},
		{"settings flag", []string{"skslc", "in.frag", "out.glsl", "--settings"}, Success, true},
		{"nosettings flag", []string{"skslc", "in.frag", "out.glsl", "--nosettings"}, Success, false},
		{"bad flag", []string{"skslc", "in.frag", "out.glsl", "--frobnicate"}, InputError, false},
		{"too few args", []string{"skslc", "in.frag"}, InputError, false},
		{"too many args", []string{"skslc", "a", "b", "c", "d"}, InputError, false},
		{"bad input suffix", []string{"skslc", "in.txt", "out.glsl"}, InputError, false},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		d := NewWithOutput(&fakeToolchain{}, &buf)
		job, rc := d.buildJob(tc.args)
		if rc != tc.rc {
			t.Errorf("%s: result = %v, want %v", tc.name, rc, tc.rc)
			continue
		}
		if rc != Success {
			if !strings.Contains(buf.String(), "usage:") && !strings.Contains(buf.String(), "input filename") {
				t.Errorf("%s: no guidance printed: %q", tc.name, buf.String())
			}
			continue
		}
		if job.HonorSettings != tc.honor {
			t.Errorf("%s: honorSettings = %v, want %v", tc.name, job.HonorSettings, tc.honor)
		}
	}
}

func TestStageKindClassification(t *testing.T) {
	tests := []struct {
		path string
		kind sksl.ProgramKind
	}{
		{"shader.vert", sksl.KindVertex},
		{"shader.frag", sksl.KindFragment},
		{"shader.sksl", sksl.KindFragment},
		{"shader.geom", sksl.KindGeometry},
		{"GrShader.fp", sksl.KindFragmentProcessor},
		{"shader.stage", sksl.KindPipelineStage},
	}
	for _, tc := range tests {
		kind, ok := stageKindFor(tc.path)
		if !ok {
			t.Errorf("%s: not classified", tc.path)
			continue
		}
		if kind != tc.kind {
			t.Errorf("%s: kind = %v, want %v", tc.path, kind, tc.kind)
		}
	}
	if _, ok := stageKindFor("shader.wgsl"); ok {
		t.Error("unknown suffix must not classify")
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path, prefix, suffix, want string
	}{
		{"src/gpu/effects/GrFooFragmentProcessor.fp", "Gr", ".fp", "FooFragmentProcessor"},
		{"GrFoo.fp", "Gr", ".fp", "Foo"},
		{`src\gpu\GrFoo.fp`, "Gr", ".fp", "Foo"},
		{"foo.fp", "Gr", ".fp", ""},
		{"GrFoo.frag", "Gr", ".fp", ""},
		{"sksl_gpu.sksl", "", ".sksl", "sksl_gpu"},
		{"Gr.fp", "Gr", ".fp", ""},
	}
	for _, tc := range tests {
		if got := baseName(tc.path, tc.prefix, tc.suffix); got != tc.want {
			t.Errorf("baseName(%q, %q, %q) = %q, want %q", tc.path, tc.prefix, tc.suffix, got, tc.want)
		}
	}
}
