// Package sksl defines the types shared between the batch driver and the
// compiler backends: program kinds, per-job compile settings and the
// parsed/loaded program representations handed to the emitters.
package sksl

import (
	"math"

	"github.com/vs-ude/skslc/internal/caps"
)

// ProgramKind identifies the shading pipeline stage of a source unit.
type ProgramKind int

const (
	// KindVertex is a vertex shader (.vert).
	KindVertex ProgramKind = iota
	// KindFragment is a fragment shader (.frag, .sksl).
	KindFragment
	// KindGeometry is a geometry shader (.geom).
	KindGeometry
	// KindFragmentProcessor is a fragment processor component (.fp).
	KindFragmentProcessor
	// KindPipelineStage is a pipeline stage snippet (.stage).
	KindPipelineStage
)

func (k ProgramKind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindFragment:
		return "fragment"
	case KindGeometry:
		return "geometry"
	case KindFragmentProcessor:
		return "fragment processor"
	case KindPipelineStage:
		return "pipeline stage"
	}
	return "unknown"
}

// DefaultInlineThreshold is the inlining threshold used when no directive
// overrides it.
const DefaultInlineThreshold = 14

// Settings holds the compile-time toggles for a single job. A zero value
// is not usable; construct with DefaultSettings.
type Settings struct {
	// Caps is a non-owning reference into the caps catalog.
	Caps *caps.ShaderCaps

	FlipY              bool
	ForceHighPrecision bool
	InlineThreshold    int
	SharpenTextures    bool

	// ReplaceSettings controls whether emitted code may substitute its
	// own settings block. Forced off for component generation.
	ReplaceSettings bool
}

// DefaultSettings returns the baseline settings record with the default
// capability profile selected.
func DefaultSettings() Settings {
	return Settings{
		Caps:            caps.Default(),
		InlineThreshold: DefaultInlineThreshold,
		ReplaceSettings: true,
	}
}

// InlineThresholdMax disables the inlining size limit entirely.
const InlineThresholdMax = math.MaxInt32

// Program is a parsed source unit ready for emission.
type Program struct {
	Kind     ProgramKind
	Source   string
	Settings Settings
}

// Module is a loaded shared-module file, the input of dehydration.
type Module struct {
	// Name is the module's base name, derived from its path.
	Name string
	// Symbols lists the top-level symbol names declared by the module.
	Symbols []string
	// Elements holds the module's top-level program elements in
	// declaration order.
	Elements []string
}
