package driver

import (
	"testing"
)

func TestWorstOrdering(t *testing.T) {
	pairs := []struct {
		a, b, want ResultCode
	}{
		{Success, Success, Success},
		{Success, CompileError, CompileError},
		{CompileError, Success, CompileError},
		{CompileError, InputError, InputError},
		{InputError, OutputError, OutputError},
		{OutputError, Success, OutputError},
		{InputError, CompileError, InputError},
	}
	for _, p := range pairs {
		if got := Worst(p.a, p.b); got != p.want {
			t.Errorf("Worst(%v, %v) = %v, want %v", p.a, p.b, got, p.want)
		}
	}
}

func TestWorstFold(t *testing.T) {
	// A batch yielding [Success, CompileError, Success] aggregates to
	// CompileError.
	result := Success
	for _, outcome := range []ResultCode{Success, CompileError, Success} {
		result = Worst(result, outcome)
	}
	if result != CompileError {
		t.Errorf("aggregate = %v, want %v", result, CompileError)
	}
}
