package foundations

import (
	"strconv"

	"github.com/npillmayer/mathacc/core/dimen"
)

// Type is the type of a value, as reported to users.
type Type struct {
	name string
}

func (t Type) String() string {
	return t.name
}

// Types of built-in values.
var (
	TypeNone     = Type{"none"}
	TypeBool     = Type{"boolean"}
	TypeInt      = Type{"integer"}
	TypeFloat    = Type{"float"}
	TypeStr      = Type{"string"}
	TypeSymbol   = Type{"symbol"}
	TypeRelative = Type{"relative length"}
	TypeContent  = Type{"content"}
	TypeFunc     = Type{"function"}
)

// Value is a value of the evaluation environment.
type Value interface {
	Type() Type
	Repr() string
}

// NoneValue is the type of None.
type NoneValue struct{}

// None is the absent value.
var None Value = NoneValue{}

func (NoneValue) Type() Type   { return TypeNone }
func (NoneValue) Repr() string { return "none" }

// Bool is a boolean value.
type Bool bool

func (b Bool) Type() Type { return TypeBool }
func (b Bool) Repr() string {
	return strconv.FormatBool(bool(b))
}

// Int is an integer value.
type Int int64

func (n Int) Type() Type { return TypeInt }
func (n Int) Repr() string {
	return strconv.FormatInt(int64(n), 10)
}

// Float is a floating point value.
type Float float64

func (f Float) Type() Type { return TypeFloat }
func (f Float) Repr() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Str is a string value.
type Str string

func (s Str) Type() Type { return TypeStr }
func (s Str) Repr() string {
	return strconv.Quote(string(s))
}

// Symbol is a value holding a single character, e.g. the value of a
// symbol name like `arrow`.
type Symbol rune

func (s Symbol) Type() Type { return TypeSymbol }
func (s Symbol) Repr() string {
	return "symbol(" + strconv.Quote(string(rune(s))) + ")"
}

// RelValue is a relative length value, like `150%` or `120% + 1pt`.
type RelValue dimen.Rel

func (r RelValue) Type() Type { return TypeRelative }
func (r RelValue) Repr() string {
	return dimen.Rel(r).String()
}

// ContentValue boxes content.
type ContentValue struct {
	Content Content
}

// Pack boxes content into a value.
func Pack(c Content) Value {
	return ContentValue{Content: c}
}

func (c ContentValue) Type() Type { return TypeContent }
func (c ContentValue) Repr() string {
	if c.Content == nil {
		return "[]"
	}
	return c.Content.Repr()
}

// FuncValue boxes a function.
type FuncValue struct {
	Func Func
}

func (f FuncValue) Type() Type { return TypeFunc }
func (f FuncValue) Repr() string {
	return f.Func.Name()
}
