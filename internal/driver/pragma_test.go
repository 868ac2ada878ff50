package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vs-ude/skslc/internal/caps"
	"github.com/vs-ude/skslc/internal/sksl"
)

func TestFindSettingsText(t *testing.T) {
	text, found := findSettingsText("/*#pragma settings Sharpen FlipY*/\nvoid main() {}\n")
	if !found {
		t.Fatal("directive not found")
	}
	if text != " Sharpen FlipY" {
		t.Errorf("directive text = %q, want %q", text, " Sharpen FlipY")
	}
}

func TestNoDirective(t *testing.T) {
	if _, found := findSettingsText("void main() {}\n"); found {
		t.Error("found a directive in plain source")
	}
}

func TestUnterminatedDirectiveIsIgnored(t *testing.T) {
	if _, found := findSettingsText("/*#pragma settings Sharpen"); found {
		t.Error("an unterminated directive must count as no directive")
	}
}

func TestSettingsOrderIndependent(t *testing.T) {
	a := sksl.DefaultSettings()
	b := sksl.DefaultSettings()
	if _, ok := applySettingsText(" Sharpen FlipY", &a); !ok {
		t.Fatal("first ordering did not resolve")
	}
	if _, ok := applySettingsText(" FlipY Sharpen", &b); !ok {
		t.Fatal("second ordering did not resolve")
	}
	if a != b {
		t.Errorf("orderings disagree: %+v vs %+v", a, b)
	}
	if !a.SharpenTextures || !a.FlipY {
		t.Errorf("settings not applied: %+v", a)
	}
}

func TestCapsProfileSelection(t *testing.T) {
	s := sksl.DefaultSettings()
	if _, ok := applySettingsText(" CannotUseFragCoord", &s); !ok {
		t.Fatal("directive did not resolve")
	}
	if s.Caps != caps.Lookup("CannotUseFragCoord") {
		t.Error("settings do not reference the catalog entry")
	}
}

func TestLaterCapsProfileWins(t *testing.T) {
	s := sksl.DefaultSettings()
	if _, ok := applySettingsText(" Version110 Version450Core", &s); !ok {
		t.Fatal("directive did not resolve")
	}
	// Both profiles apply; suffix stripping applies the rightmost first,
	// so the leftmost ends up selected last. Either way the record must
	// reference exactly one catalog entry.
	if s.Caps != caps.Lookup("Version110") && s.Caps != caps.Lookup("Version450Core") {
		t.Error("no catalog entry selected")
	}
}

func TestInlineThresholdOptions(t *testing.T) {
	s := sksl.DefaultSettings()
	if _, ok := applySettingsText(" NoInline", &s); !ok || s.InlineThreshold != 0 {
		t.Errorf("NoInline: threshold = %v", s.InlineThreshold)
	}
	s = sksl.DefaultSettings()
	if _, ok := applySettingsText(" InlineThresholdMax", &s); !ok || s.InlineThreshold != sksl.InlineThresholdMax {
		t.Errorf("InlineThresholdMax: threshold = %v", s.InlineThreshold)
	}
}

func TestEmptyDirectiveText(t *testing.T) {
	s := sksl.DefaultSettings()
	if _, ok := applySettingsText("", &s); !ok {
		t.Error("empty directive text must resolve trivially")
	}
	if s != sksl.DefaultSettings() {
		t.Error("empty directive text must leave the settings untouched")
	}
}

func TestUnknownTokenAbortsWithRemainder(t *testing.T) {
	s := sksl.DefaultSettings()
	remainder, ok := applySettingsText(" Sharpen Bogus", &s)
	if ok {
		t.Fatal("unknown token did not fail")
	}
	if !strings.Contains(remainder, "Bogus") {
		t.Errorf("remainder %q does not name the offending token", remainder)
	}
}

func TestDetectSettingsPrintsRemainder(t *testing.T) {
	var buf bytes.Buffer
	d := NewWithOutput(&fakeToolchain{}, &buf)
	s := sksl.DefaultSettings()
	if d.detectSettings("/*#pragma settings Sharpen Bogus*/", &s) {
		t.Fatal("unknown token did not fail")
	}
	if !strings.Contains(buf.String(), "Bogus") {
		t.Errorf("diagnostic %q does not name the offending token", buf.String())
	}
}

func TestBaselineWithoutDirective(t *testing.T) {
	var buf bytes.Buffer
	d := NewWithOutput(&fakeToolchain{}, &buf)
	s := sksl.DefaultSettings()
	if !d.detectSettings("void main() {}", &s) {
		t.Fatal("plain source must not fail directive detection")
	}
	if s != sksl.DefaultSettings() {
		t.Errorf("settings diverged from the baseline: %+v", s)
	}
	if s.Caps != caps.Default() {
		t.Error("caps diverged from the default profile")
	}
}

func TestOptionTokensAreSuffixFree(t *testing.T) {
	for i, a := range pragmaOptions {
		for j, b := range pragmaOptions {
			if i != j && strings.HasSuffix(" "+a.token, " "+b.token) {
				t.Errorf("option %q is a suffix of %q", b.token, a.token)
			}
		}
	}
}
