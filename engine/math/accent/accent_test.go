package accent

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableIsWellFormed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	seen := make(map[rune]bool)
	for i, e := range Table() {
		if seen[e.Char] {
			t.Errorf("entry %d: duplicate accent %U", i, e.Char)
		}
		seen[e.Char] = true
		for _, alias := range e.Aliases {
			if alias == "" {
				t.Errorf("entry %d: empty alias", i)
			}
		}
	}
	if len(seen) != 19 {
		t.Errorf("expected 19 accents, have %d", len(seen))
	}
}

func TestCombiningFindsEveryEntry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	for _, e := range Table() {
		if a, ok := Combining(string(e.Char)); !ok || a != Accent(e.Char) {
			t.Errorf("expected %U to resolve to itself, got %U", e.Char, rune(a))
		}
		for _, alias := range e.Aliases {
			if a, ok := Combining(alias); !ok || a != Accent(e.Char) {
				t.Errorf("expected alias %q to resolve to %U, got %U", alias, e.Char, rune(a))
			}
		}
	}
}

func TestCombiningAliases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	for input, expected := range map[string]Accent{
		"^":       '\u0302',
		"~":       '\u0303',
		"-":       '\u0305',
		"⋅":       '\u0307',
		"→":       '\u20d7',
		"⟶":       '\u20d7',
		"↔\ufe0e": '\u20e1',
		"⇀":       '\u20d1',
		"\u20db":  '\u20db',
		"\u0300":  '\u0300',
		"\u030a":  '\u030a',
		"○":       '\u030a',
	} {
		a, ok := Combining(input)
		if !ok {
			t.Errorf("expected %q to select an accent", input)
		} else if a != expected {
			t.Errorf("expected %q to select %U, got %U", input, rune(expected), rune(a))
		}
	}
	for _, input := range []string{"", "q", "ab", "^^", "↔\ufe0f", "\xff", "HAT"} {
		if a, ok := Combining(input); ok {
			t.Errorf("expected %q not to select an accent, got %U", input, rune(a))
		}
	}
}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	if _, ok := Normalize(""); ok {
		t.Errorf("expected empty string not to normalize")
	}
	if _, ok := Normalize("ab"); ok {
		t.Errorf("expected 'ab' not to normalize")
	}
	if _, ok := Normalize("\xff"); ok {
		t.Errorf("expected invalid UTF-8 not to normalize")
	}
	if a, ok := Normalize("q"); !ok || a != 'q' {
		t.Errorf("expected 'q' to normalize to itself, got %U", rune(a))
	}
	if a, ok := Normalize("→"); !ok || a != '\u20d7' {
		t.Errorf("expected '→' to normalize to combining arrow, got %U", rune(a))
	}
	if a, ok := Normalize("↔\ufe0e"); !ok || a != '\u20e1' {
		t.Errorf("expected multi-character alias to normalize, got %U", rune(a))
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	for _, e := range Table() {
		a := Accent(e.Char)
		v := IntoValue(a)
		s, ok := v.(interface{ Repr() string })
		if !ok {
			t.Fatalf("expected value, got %T", v)
		}
		back, err := FromValue(v)
		if err != nil {
			t.Errorf("round trip of %s failed: %v", s.Repr(), err)
		} else if back != a {
			t.Errorf("round trip of %U yields %U", e.Char, rune(back))
		}
	}
}

func TestAccentNaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	a := Accent('\u0303')
	if a.Name() != "COMBINING TILDE" {
		t.Errorf("expected Unicode name COMBINING TILDE, got %q", a.Name())
	}
	if a.Codepoint() != "U+0303" {
		t.Errorf("expected U+0303, got %s", a.Codepoint())
	}
	if !a.IsKnown() || Accent('q').IsKnown() {
		t.Errorf("IsKnown misreports")
	}
}

func TestNamedAccentsResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathacc.accent")
	defer teardown()
	//
	for _, n := range NamedAccents() {
		if _, ok := Combining(string(n.Symbol)); !ok {
			t.Errorf("expected named accent %s (%q) to select an accent", n.Name, n.Symbol)
		}
	}
}
