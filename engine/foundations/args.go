package foundations

import (
	"errors"
	"strings"

	"github.com/npillmayer/mathacc/core"
)

// Errors of argument extraction. They are wrapped into core errors which
// name the offending argument.
var (
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrTypeMismatch       = errors.New("type mismatch")
)

// Arg is a single argument of a call. Positional arguments have an empty name.
type Arg struct {
	Name  string
	Value Value
}

// Args is the list of arguments of a function call. Native functions
// consume arguments from it; whatever is left over after the call is an error.
type Args struct {
	items []Arg
}

// NewArgs creates an argument list from positional values.
func NewArgs(positional ...Value) *Args {
	args := &Args{items: make([]Arg, 0, len(positional)+2)}
	for _, v := range positional {
		args.items = append(args.items, Arg{Value: v})
	}
	return args
}

// Push appends a positional argument.
func (args *Args) Push(v Value) *Args {
	args.items = append(args.items, Arg{Value: v})
	return args
}

// With appends a named argument.
func (args *Args) With(name string, v Value) *Args {
	args.items = append(args.items, Arg{Name: name, Value: v})
	return args
}

// Len returns the number of arguments not yet consumed.
func (args *Args) Len() int {
	return len(args.items)
}

// Expect consumes the first positional argument. If there is none, an error
// wrapping ErrMissingArgument is returned.
func (args *Args) Expect(what string) (Value, error) {
	if v, ok := args.Eat(); ok {
		return v, nil
	}
	tracer().Debugf("missing argument %q", what)
	return nil, core.WrapError(ErrMissingArgument, core.EMISSING, "missing argument: %s", what)
}

// Eat consumes the first positional argument, if any.
func (args *Args) Eat() (Value, bool) {
	for i, arg := range args.items {
		if arg.Name == "" {
			args.remove(i)
			return arg.Value, true
		}
	}
	return nil, false
}

// Named consumes all named arguments with the given name and returns the
// value of the last one.
func (args *Args) Named(name string) (Value, bool) {
	var found Value
	for i := 0; i < len(args.items); {
		if args.items[i].Name == name {
			found = args.items[i].Value
			args.remove(i)
			continue
		}
		i++
	}
	return found, found != nil
}

// Finish checks that all arguments have been consumed.
func (args *Args) Finish() error {
	if len(args.items) == 0 {
		return nil
	}
	arg := args.items[0]
	if arg.Name != "" {
		return core.WrapError(ErrUnexpectedArgument, core.EINVALID, "unexpected argument: %s", arg.Name)
	}
	return core.WrapError(ErrUnexpectedArgument, core.EINVALID, "unexpected argument %s", arg.Value.Repr())
}

func (args *Args) remove(i int) {
	args.items = append(args.items[:i], args.items[i+1:]...)
}

func (args *Args) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, arg := range args.items {
		if i > 0 {
			b.WriteString(", ")
		}
		if arg.Name != "" {
			b.WriteString(arg.Name)
			b.WriteString(": ")
		}
		b.WriteString(arg.Value.Repr())
	}
	b.WriteString(")")
	return b.String()
}

// --- Typed extraction ------------------------------------------------------

// ExpectAs consumes the first positional argument and casts it.
func ExpectAs[T any](args *Args, what string, cast Caster[T]) (T, error) {
	var zero T
	v, err := args.Expect(what)
	if err != nil {
		return zero, err
	}
	return cast(v)
}

// NamedAs consumes a named argument and casts it. If the argument is absent,
// ok is false and err is nil.
func NamedAs[T any](args *Args, name string, cast Caster[T]) (value T, ok bool, err error) {
	v, found := args.Named(name)
	if !found {
		return value, false, nil
	}
	if value, err = cast(v); err != nil {
		return value, false, err
	}
	return value, true, nil
}
