package driver

import (
	"fmt"
	"strings"

	"github.com/vs-ude/skslc/internal/caps"
	"github.com/vs-ude/skslc/internal/sksl"
)

// settingsPragma introduces an embedded settings directive, like so:
//    /*#pragma settings Default Sharpen*/
// Any number of options can be provided, in any order.
const settingsPragma = "/*#pragma settings "

// findSettingsText returns the raw directive text between the introducer
// and the closing `*/`. The introducer's trailing space is kept at the
// front so that every option token can be stripped as a ` Token` suffix.
// A missing introducer or a missing terminator means there is no
// directive; neither is an error.
func findSettingsText(text string) (string, bool) {
	start := strings.Index(text, settingsPragma)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(settingsPragma)-1:]
	end := strings.Index(rest, "*/")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// pragmaOption maps one directive token to its effect: selecting a
// capability profile from the catalog or mutating one settings field.
type pragmaOption struct {
	token string
	apply func(*sksl.Settings)
}

func capsOption(name string) pragmaOption {
	return pragmaOption{token: name, apply: func(s *sksl.Settings) {
		s.Caps = caps.Lookup(name)
	}}
}

var pragmaOptions = []pragmaOption{
	capsOption("AddAndTrueToLoopCondition"),
	capsOption("BlendModesFailRandomlyForAllZeroVec"),
	capsOption("CannotUseFractForNegativeValues"),
	capsOption("CannotUseFragCoord"),
	capsOption("CannotUseMinAndAbsTogether"),
	capsOption("Default"),
	capsOption("EmulateAbsIntFunction"),
	capsOption("FragCoordsOld"),
	capsOption("FragCoordsNew"),
	capsOption("GeometryShaderExtensionString"),
	capsOption("GeometryShaderSupport"),
	capsOption("GSInvocationsExtensionString"),
	capsOption("IncompleteShortIntPrecision"),
	capsOption("MustGuardDivisionEvenAfterExplicitZeroCheck"),
	capsOption("MustForceNegatedAtanParamToFloat"),
	capsOption("NoGSInvocationsSupport"),
	capsOption("RemovePowWithConstantExponent"),
	capsOption("RewriteDoWhileLoops"),
	capsOption("ShaderDerivativeExtensionString"),
	capsOption("UnfoldShortCircuitAsTernary"),
	capsOption("UsesPrecisionModifiers"),
	capsOption("Version110"),
	capsOption("Version450Core"),
	{"FlipY", func(s *sksl.Settings) { s.FlipY = true }},
	{"ForceHighPrecision", func(s *sksl.Settings) { s.ForceHighPrecision = true }},
	{"NoInline", func(s *sksl.Settings) { s.InlineThreshold = 0 }},
	{"InlineThresholdMax", func(s *sksl.Settings) { s.InlineThreshold = sksl.InlineThresholdMax }},
	{"Sharpen", func(s *sksl.Settings) { s.SharpenTextures = true }},
}

func init() {
	// Suffix stripping cannot tell two options apart if one token, with
	// its separator, ends another. The table must never contain such a
	// pair, so fail fast if one sneaks in.
	for i, a := range pragmaOptions {
		for j, b := range pragmaOptions {
			if i != j && strings.HasSuffix(" "+a.token, " "+b.token) {
				panic("pragma option " + b.token + " is a suffix of " + a.token)
			}
		}
	}
}

// applySettingsText strips recognized option tokens from the end of the
// directive text, applying each effect as it matches, until nothing is
// left. The options can appear in any order, so the whole table is
// retried until a full pass removes nothing. On failure the unrecognized
// remainder is returned verbatim.
func applySettingsText(text string, s *sksl.Settings) (string, bool) {
	for {
		if len(text) == 0 {
			return "", true
		}
		before := len(text)
		for _, opt := range pragmaOptions {
			suffix := " " + opt.token
			if strings.HasSuffix(text, suffix) {
				text = text[:len(text)-len(suffix)]
				opt.apply(s)
			}
		}
		if len(text) == 0 {
			return "", true
		}
		if len(text) == before {
			return text, false
		}
	}
}

// detectSettings applies an embedded settings directive, if present, to
// the given settings record. A source without a directive resolves to
// the unchanged baseline.
func (d *Driver) detectSettings(text string, s *sksl.Settings) bool {
	settingsText, found := findSettingsText(text)
	if !found {
		return true
	}
	if remainder, ok := applySettingsText(settingsText, s); !ok {
		fmt.Fprintf(d.out, "Unrecognized #pragma settings:%s\n", remainder)
		return false
	}
	return true
}
