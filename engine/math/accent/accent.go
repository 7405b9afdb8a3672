package accent

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Accent is an accent character. It is always a single Unicode scalar value.
type Accent rune

// Combining selects the well-known combining accent matching text, if any.
// text matches an entry if it is the entry's character or one of its
// aliases. No case folding or normalization is applied.
func Combining(text string) (Accent, bool) {
	i, ok := lookup(text)
	if !ok {
		return 0, false
	}
	return Accent(table[i].Char), true
}

// Normalize selects the combining accent for text, falling back to the lone
// character of text if there is no corresponding one.
//
// Returns false if there is no combining accent and text does not consist
// of exactly one character.
func Normalize(text string) (Accent, bool) {
	if a, ok := Combining(text); ok {
		return a, true
	}
	if c, ok := parseChar(text); ok {
		return Accent(c), true
	}
	return 0, false
}

// parseChar decodes s if it consists of exactly one valid scalar value.
func parseChar(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	return r, true
}

// Char returns the accent character.
func (a Accent) Char() rune {
	return rune(a)
}

// String returns the accent character as a string.
func (a Accent) String() string {
	return string(rune(a))
}

// Codepoint returns the accent's code point in U+ notation.
func (a Accent) Codepoint() string {
	return fmt.Sprintf("U+%04X", rune(a))
}

// Name returns the Unicode name of the accent character, e.g.
// "COMBINING TILDE".
func (a Accent) Name() string {
	return runenames.Name(rune(a))
}

// IsKnown is true if a is an entry of the accent table.
func (a Accent) IsKnown() bool {
	_, ok := indexOf(a)
	return ok
}
