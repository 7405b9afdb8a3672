package accent

import (
	"strings"
	"sync"

	"github.com/npillmayer/mathacc/engine/foundations"
)

// Registry holds a native function for every entry of the accent table.
// Functions are created once, on first use, and are never rebuilt.
// Repeated lookups of an accent return the identical function.
//
// The zero Registry is ready to use. A Registry must not be copied after
// first use.
type Registry struct {
	once  sync.Once
	funcs [len(table)]descriptor
}

// descriptor is the function data of the accent at table position index.
// All descriptors share one invocation routine.
type descriptor struct {
	data  foundations.NativeFuncData
	index int
}

// NewRegistry creates a registry. Functions are built on first lookup.
func NewRegistry() *Registry {
	return &Registry{}
}

// Func returns the accent function for a designator, if text selects a
// combining accent (see Combining).
func (reg *Registry) Func(text string) (foundations.Func, bool) {
	i, ok := lookup(text)
	if !ok {
		return foundations.Func{}, false
	}
	return reg.at(i), true
}

// Lookup returns the accent function for an accent of the table.
func (reg *Registry) Lookup(a Accent) (foundations.Func, bool) {
	i, ok := indexOf(a)
	if !ok {
		return foundations.Func{}, false
	}
	return reg.at(i), true
}

// Entries returns the functions of all accents, in table order.
func (reg *Registry) Entries() []foundations.Func {
	funcs := make([]foundations.Func, len(table))
	for i := range table {
		funcs[i] = reg.at(i)
	}
	return funcs
}

func (reg *Registry) at(i int) foundations.Func {
	reg.once.Do(reg.build)
	return foundations.NewFunc(&reg.funcs[i].data)
}

// build creates the function data for all accents. Titles and docs of all
// functions are written to one buffer and sliced out of it.
func (reg *Registry) build() {
	type span struct{ title, docs [2]int }
	var arena strings.Builder
	spans := make([]span, len(table))
	for i, e := range table {
		spans[i].title[0] = arena.Len()
		arena.WriteString("Accent (")
		arena.WriteRune(e.Char)
		arena.WriteString(")")
		spans[i].title[1] = arena.Len()
		spans[i].docs[0] = arena.Len()
		arena.WriteString("Adds the accent ")
		arena.WriteRune(e.Char)
		arena.WriteString(" on an expression.")
		spans[i].docs[1] = arena.Len()
	}
	text := arena.String()
	for i := range reg.funcs {
		d := &reg.funcs[i]
		d.index = i
		d.data = foundations.NativeFuncData{
			Function: d,
			Name:     "(..) => ..",
			Title:    text[spans[i].title[0]:spans[i].title[1]],
			Docs:     text[spans[i].docs[0]:spans[i].docs[1]],
			Params:   accentParams,
			Returns:  foundations.Accepts(foundations.TypeContent),
		}
	}
	tracer().Debugf("accent registry built with %d functions", len(reg.funcs))
}

// Call applies the accent of the descriptor to a base.
func (d *descriptor) Call(args *foundations.Args) (foundations.Value, error) {
	return invoke(Accent(table[d.index].Char), args)
}

// invoke constructs an accent element from call arguments.
func invoke(a Accent, args *foundations.Args) (foundations.Value, error) {
	base, err := foundations.ExpectAs(args, "base", foundations.CastContent)
	if err != nil {
		return nil, err
	}
	return construct(base, a, args)
}

// Construct implements the generic accent function, taking the accent as
// its second positional argument: accent(base, accent, size: .., dotless: ..).
func Construct(args *foundations.Args) (foundations.Value, error) {
	base, err := foundations.ExpectAs(args, "base", foundations.CastContent)
	if err != nil {
		return nil, err
	}
	a, err := foundations.ExpectAs(args, "accent", FromValue)
	if err != nil {
		return nil, err
	}
	return construct(base, a, args)
}

// construct creates the element. size and dotless override the element's
// defaults only if given.
func construct(base foundations.Content, a Accent, args *foundations.Args) (foundations.Value, error) {
	size, hasSize, err := foundations.NamedAs(args, "size", foundations.CastRel)
	if err != nil {
		return nil, err
	}
	dotless, hasDotless, err := foundations.NamedAs(args, "dotless", foundations.CastBool)
	if err != nil {
		return nil, err
	}
	elem := New(base, a)
	if hasSize {
		elem = elem.WithSize(size)
	}
	if hasDotless {
		elem = elem.WithDotless(dotless)
	}
	return foundations.Pack(elem), nil
}

// accentParams is the signature shared by all accent functions.
var accentParams = []foundations.ParamInfo{
	baseParam,
	sizeParam,
	dotlessParam,
}

// ConstructParams is the signature of the generic accent function.
var ConstructParams = []foundations.ParamInfo{
	baseParam,
	{
		Name:       "accent",
		Docs:       "The accent to apply, e.g. a combining character or one of its aliases.",
		Input:      Input,
		Positional: true,
		Required:   true,
	},
	sizeParam,
	dotlessParam,
}

var (
	baseParam = foundations.ParamInfo{
		Name:       "base",
		Docs:       "The base to which the accent is applied.",
		Input:      foundations.ContentInput,
		Positional: true,
		Required:   true,
	}
	sizeParam = foundations.ParamInfo{
		Name:  "size",
		Docs:  "The size of the accent, relative to the width of the base.",
		Input: foundations.RelInput,
		Named: true,
	}
	dotlessParam = foundations.ParamInfo{
		Name:  "dotless",
		Docs:  "Whether to remove the dot on top of lowercase i and j when adding a top accent.",
		Input: foundations.BoolInput,
		Named: true,
	}
)

var _ foundations.NativeFunc = (*descriptor)(nil)
