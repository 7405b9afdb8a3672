package accent

import (
	"errors"
	"unicode/utf8"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/engine/foundations"
)

// Errors of casting values to accents.
var (
	ErrInvalidAccentText   = errors.New("expected exactly one character")
	ErrInvalidAccentSymbol = errors.New("expected a single-codepoint symbol")
)

// Input describes the values castable to an accent.
var Input = foundations.Accepts(foundations.TypeStr, foundations.TypeSymbol, foundations.TypeContent)

// FromValue casts a value to an accent:
//
//   - symbol values and strings are normalized, e.g. the aliases "→", "⟶"
//     and "^" select combining accents, other single characters are taken
//     as they are
//   - content must be a symbol element, its text is normalized
//
// FromValue is a foundations.Caster.
func FromValue(v foundations.Value) (Accent, error) {
	switch x := v.(type) {
	case foundations.Symbol:
		if !utf8.ValidRune(rune(x)) {
			tracer().Debugf("symbol %U is not a valid scalar value", rune(x))
			return 0, core.WrapError(ErrInvalidAccentSymbol, core.EINVALID, "%v", ErrInvalidAccentSymbol)
		}
		a, _ := Normalize(string(rune(x)))
		return a, nil
	case foundations.Str:
		if a, ok := Normalize(string(x)); ok {
			return a, nil
		}
		tracer().Debugf("cannot cast %s to an accent", x.Repr())
		return 0, core.WrapError(ErrInvalidAccentText, core.EINVALID, "%v", ErrInvalidAccentText)
	case foundations.ContentValue:
		if sym, ok := foundations.Packed[*foundations.SymbolElem](x.Content); ok {
			if a, ok := Normalize(sym.Text); ok {
				return a, nil
			}
		}
		tracer().Debugf("cannot cast content %s to an accent", x.Repr())
		return 0, core.WrapError(ErrInvalidAccentSymbol, core.EINVALID, "%v", ErrInvalidAccentSymbol)
	}
	return 0, foundations.Mismatch(Input, v)
}

// IntoValue converts an accent to a value holding its raw character.
func IntoValue(a Accent) foundations.Value {
	return foundations.Str(a.String())
}

var _ foundations.Caster[Accent] = FromValue
