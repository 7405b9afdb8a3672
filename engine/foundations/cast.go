package foundations

import (
	"strings"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/core/dimen"
)

// Caster converts a value into a Go type, failing with a type mismatch
// error if the value has an unsuitable type.
type Caster[T any] func(Value) (T, error)

// CastInfo describes which types of values a cast accepts.
type CastInfo struct {
	Types []Type
}

// Accepts creates cast info for a list of types.
func Accepts(types ...Type) CastInfo {
	return CastInfo{Types: types}
}

// Contains is true if values of type t are accepted.
func (info CastInfo) Contains(t Type) bool {
	for _, u := range info.Types {
		if u == t {
			return true
		}
	}
	return false
}

// String lists the accepted types, like "string, symbol or content".
func (info CastInfo) String() string {
	names := make([]string, len(info.Types))
	for i, t := range info.Types {
		names[i] = t.String()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// Mismatch creates a type mismatch error for a value not accepted by info.
func Mismatch(info CastInfo, v Value) error {
	found := TypeNone
	if v != nil {
		found = v.Type()
	}
	tracer().Debugf("cast: expected %s, found %s", info, found)
	return core.WrapError(ErrTypeMismatch, core.EMISMATCH, "expected %s, found %s", info, found)
}

// --- Built-in casters ------------------------------------------------------

// Cast info of the built-in casters.
var (
	ContentInput = Accepts(TypeContent, TypeStr, TypeSymbol)
	RelInput     = Accepts(TypeRelative)
	BoolInput    = Accepts(TypeBool)
)

// CastContent accepts content, and converts strings to text and symbols to
// symbol elements.
func CastContent(v Value) (Content, error) {
	switch x := v.(type) {
	case ContentValue:
		return x.Content, nil
	case Str:
		return NewText(string(x)), nil
	case Symbol:
		return NewSymbol(string(rune(x))), nil
	}
	return nil, Mismatch(ContentInput, v)
}

// CastRel accepts relative lengths.
func CastRel(v Value) (dimen.Rel, error) {
	if r, ok := v.(RelValue); ok {
		return dimen.Rel(r), nil
	}
	return dimen.Rel{}, Mismatch(RelInput, v)
}

// CastBool accepts booleans.
func CastBool(v Value) (bool, error) {
	if b, ok := v.(Bool); ok {
		return bool(b), nil
	}
	return false, Mismatch(BoolInput, v)
}
