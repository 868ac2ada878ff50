// Package standalone implements the toolchain used by the skslc binary
// when no full compiler is linked in. It validates source lexically and
// emits shell output for every target: a real SPIR-V module chain for
// binary output and an annotated rendition of the source for the text
// dialects. It deliberately stops short of semantic analysis.
package standalone

import (
	"errors"
)

// Config ...
type Config struct {
	// GeneratorMagic identifies this toolchain in emitted SPIR-V headers.
	GeneratorMagic uint32 `json:"generator_magic"`
	// FloatPrecision is the precision modifier emitted for GLSL targets
	// that use precision modifiers. One of lowp, mediump, highp.
	FloatPrecision string `json:"float_precision"`
}

// Default ...
func (c *Config) Default() {
	c.GeneratorMagic = 0
	c.FloatPrecision = "mediump"
}

// Name ...
func (c *Config) Name() string {
	return "standalone"
}

// CheckConfig ...
func (c *Config) CheckConfig() ([]string, error) {
	switch c.FloatPrecision {
	case "lowp", "mediump", "highp":
	default:
		return nil, errors.New("float_precision must be one of lowp, mediump or highp")
	}
	var warnings []string
	if c.GeneratorMagic == 0 {
		warnings = append(warnings, "generator_magic is 0; emitted SPIR-V will not identify its generator")
	}
	return warnings, nil
}

// Toolchain ...
type Toolchain struct {
	conf *Config
}

// NewToolchain constructs the standalone toolchain.
func NewToolchain(conf *Config) *Toolchain {
	if conf == nil {
		conf = &Config{}
		conf.Default()
	}
	return &Toolchain{conf: conf}
}
