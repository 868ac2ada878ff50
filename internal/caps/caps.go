// Package caps holds the catalog of named shader capability profiles.
// A profile describes the quirks and limitations of a target graphics
// environment that influence code generation. The catalog is built once
// and is immutable afterwards; callers share entries by reference and
// must never modify them.
package caps

import (
	"sync"
)

// ShaderCaps describes one target environment.
type ShaderCaps struct {
	// Name is the catalog key this profile is registered under.
	Name string

	// GLSLVersionDecl is the version string emitted into GLSL output,
	// e.g. "330" or "450 core".
	GLSLVersionDecl string

	UsesPrecisionModifiers bool

	GeometryShaderSupport     bool
	GeometryShaderExtension   string
	GSInvocationsSupport      bool
	GSInvocationsExtension    string
	ShaderDerivativeExtension string

	// FragCoordsConvention selects how gl_FragCoord is expressed.
	// One of "default", "old" or "new".
	FragCoordsConvention string

	CanUseFractForNegativeValues bool
	CanUseFragCoord              bool
	CanUseMinAndAbsTogether      bool

	AddAndTrueToLoopCondition                   bool
	BlendModesFailRandomlyForAllZeroVec         bool
	EmulateAbsIntFunction                       bool
	IncompleteShortIntPrecision                 bool
	MustForceNegatedAtanParamToFloat            bool
	MustGuardDivisionEvenAfterExplicitZeroCheck bool
	RemovePowWithConstantExponent               bool
	RewriteDoWhileLoops                         bool
	UnfoldShortCircuitAsTernary                 bool
}

var (
	buildOnce sync.Once
	catalog   map[string]*ShaderCaps
)

// standalone returns the baseline profile every named entry derives from.
func standalone(name string) *ShaderCaps {
	return &ShaderCaps{
		Name:                         name,
		GLSLVersionDecl:              "330",
		GeometryShaderSupport:        true,
		GSInvocationsSupport:         true,
		FragCoordsConvention:         "default",
		CanUseFractForNegativeValues: true,
		CanUseFragCoord:              true,
		CanUseMinAndAbsTogether:      true,
	}
}

func build() {
	entries := []struct {
		name  string
		tweak func(*ShaderCaps)
	}{
		{"Default", func(c *ShaderCaps) {}},
		{"AddAndTrueToLoopCondition", func(c *ShaderCaps) { c.AddAndTrueToLoopCondition = true }},
		{"BlendModesFailRandomlyForAllZeroVec", func(c *ShaderCaps) { c.BlendModesFailRandomlyForAllZeroVec = true }},
		{"CannotUseFractForNegativeValues", func(c *ShaderCaps) { c.CanUseFractForNegativeValues = false }},
		{"CannotUseFragCoord", func(c *ShaderCaps) { c.CanUseFragCoord = false }},
		{"CannotUseMinAndAbsTogether", func(c *ShaderCaps) { c.CanUseMinAndAbsTogether = false }},
		{"EmulateAbsIntFunction", func(c *ShaderCaps) { c.EmulateAbsIntFunction = true }},
		{"FragCoordsOld", func(c *ShaderCaps) { c.FragCoordsConvention = "old" }},
		{"FragCoordsNew", func(c *ShaderCaps) { c.FragCoordsConvention = "new" }},
		{"GeometryShaderExtensionString", func(c *ShaderCaps) { c.GeometryShaderExtension = "GL_EXT_geometry_shader" }},
		{"GeometryShaderSupport", func(c *ShaderCaps) { c.GeometryShaderSupport = true }},
		{"GSInvocationsExtensionString", func(c *ShaderCaps) { c.GSInvocationsExtension = "GL_ARB_gpu_shader5" }},
		{"IncompleteShortIntPrecision", func(c *ShaderCaps) { c.IncompleteShortIntPrecision = true }},
		{"MustGuardDivisionEvenAfterExplicitZeroCheck", func(c *ShaderCaps) { c.MustGuardDivisionEvenAfterExplicitZeroCheck = true }},
		{"MustForceNegatedAtanParamToFloat", func(c *ShaderCaps) { c.MustForceNegatedAtanParamToFloat = true }},
		{"NoGSInvocationsSupport", func(c *ShaderCaps) {
			c.GSInvocationsSupport = false
			c.GeometryShaderExtension = "GL_EXT_geometry_shader"
		}},
		{"RemovePowWithConstantExponent", func(c *ShaderCaps) { c.RemovePowWithConstantExponent = true }},
		{"RewriteDoWhileLoops", func(c *ShaderCaps) { c.RewriteDoWhileLoops = true }},
		{"ShaderDerivativeExtensionString", func(c *ShaderCaps) { c.ShaderDerivativeExtension = "GL_OES_standard_derivatives" }},
		{"UnfoldShortCircuitAsTernary", func(c *ShaderCaps) { c.UnfoldShortCircuitAsTernary = true }},
		{"UsesPrecisionModifiers", func(c *ShaderCaps) { c.UsesPrecisionModifiers = true }},
		{"Version110", func(c *ShaderCaps) { c.GLSLVersionDecl = "110" }},
		{"Version450Core", func(c *ShaderCaps) { c.GLSLVersionDecl = "450 core" }},
	}
	catalog = make(map[string]*ShaderCaps, len(entries))
	for _, e := range entries {
		c := standalone(e.name)
		e.tweak(c)
		catalog[e.name] = c
	}
}

// Catalog returns the shared profile table, building it on first use.
func Catalog() map[string]*ShaderCaps {
	buildOnce.Do(build)
	return catalog
}

// Lookup returns the named profile, or nil if no such profile exists.
func Lookup(name string) *ShaderCaps {
	return Catalog()[name]
}

// Default returns the baseline profile used when no directive selects one.
func Default() *ShaderCaps {
	return Catalog()["Default"]
}

// Names returns every profile name in the catalog.
func Names() []string {
	c := Catalog()
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	return names
}
