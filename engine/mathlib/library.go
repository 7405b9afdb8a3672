package mathlib

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/mathacc/core/parameters"
	"github.com/npillmayer/mathacc/engine/foundations"
	"github.com/npillmayer/mathacc/engine/math/accent"
)

// Configuration is the source of library settings. A schuko
// testconfig.Conf will do.
type Configuration interface {
	GetString(key string) string
}

// Configuration keys.
const (
	KeyClassifier = "math.accent.classifier"
	KeySize       = "math.accent.size"
	KeyDotless    = "math.accent.dotless"
)

// ErrNotCallable is returned for calls of values which are neither
// functions nor accent symbols.
var ErrNotCallable = errors.New("symbol is not callable")

// Library bundles the math library state. It is read-only after New
// returns and may be shared between goroutines, with the exception of the
// typesetting registers.
type Library struct {
	classifier accent.Classifier
	registry   *accent.Registry
	regs       *parameters.TypesettingRegisters
	scope      *foundations.Scope
}

// New creates a library from a configuration. conf may be nil, in which
// case defaults are used.
func New(conf Configuration) (*Library, error) {
	lib := &Library{
		registry: accent.NewRegistry(),
		regs:     parameters.NewTypesettingRegisters(),
		scope:    foundations.NewScope(),
	}
	var err error
	if lib.classifier, err = accent.NewClassifier(setting(conf, KeyClassifier)); err != nil {
		return nil, err
	}
	lib.regs.Push(parameters.P_MATHCLASSES, lib.classifier.Name())
	if s := setting(conf, KeySize); s != "" {
		size, err := dimen.ParseRel(s)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "invalid accent size %q", s)
		}
		lib.regs.Push(parameters.P_ACCENTSIZE, size)
	}
	if s := setting(conf, KeyDotless); s != "" {
		dotless, err := strconv.ParseBool(s)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "invalid dotless setting %q", s)
		}
		lib.regs.Push(parameters.P_DOTLESS, dotless)
	}
	lib.define()
	tracer().Debugf("math library with %d names, accents classified by %s",
		lib.scope.Len(), lib.classifier.Name())
	return lib, nil
}

func setting(conf Configuration, key string) string {
	if conf == nil {
		return ""
	}
	return strings.TrimSpace(conf.GetString(key))
}

// define binds the named accents and the generic accent function.
func (lib *Library) define() {
	for _, n := range accent.NamedAccents() {
		lib.scope.Define(n.Name, foundations.Symbol(n.Symbol))
	}
	lib.scope.DefineFunc(foundations.NewFunc(&foundations.NativeFuncData{
		Function: foundations.NativeFuncFunc(accent.Construct),
		Name:     "accent",
		Title:    "Accent",
		Docs:     "Attaches an accent to a base.",
		Keywords: []string{"diacritic", "decorate", "arrow", "dot", "bar", "hat", "tilde"},
		Params:   accent.ConstructParams,
		Returns:  foundations.Accepts(foundations.TypeContent),
	}))
}

// Classifier returns the classifier strategy of the library.
func (lib *Library) Classifier() accent.Classifier {
	return lib.classifier
}

// Registry returns the accent function registry.
func (lib *Library) Registry() *accent.Registry {
	return lib.registry
}

// Registers returns the typesetting registers holding element defaults.
func (lib *Library) Registers() *parameters.TypesettingRegisters {
	return lib.regs
}

// Scope returns the library's bindings.
func (lib *Library) Scope() *foundations.Scope {
	return lib.scope
}

// Lookup finds a name in the library scope.
func (lib *Library) Lookup(name string) (foundations.Value, bool) {
	return lib.scope.Get(name)
}

// Call calls a callee with args. Functions are called directly. Symbols
// are callable if they designate an accent, e.g. `hat(x)` with hat bound
// to '^'.
func (lib *Library) Call(callee foundations.Value, args *foundations.Args) (foundations.Value, error) {
	switch c := callee.(type) {
	case foundations.FuncValue:
		return c.Func.Call(args)
	case foundations.Symbol:
		f, ok := lib.registry.Func(string(rune(c)))
		if !ok {
			tracer().Debugf("symbol %s is not an accent", c.Repr())
			return nil, core.WrapError(ErrNotCallable, core.EINVALID, "%v", ErrNotCallable)
		}
		return f.Call(args)
	}
	return nil, foundations.Mismatch(callable, callee)
}

var callable = foundations.Accepts(foundations.TypeFunc, foundations.TypeSymbol)

// Placement is the resolved layout information of an accent element.
type Placement struct {
	Bottom  bool        // accent attaches below the base
	Width   dimen.Dimen // target width of the accent
	Dotless bool        // remove dots of i and j
}

// Place resolves an accent element for a base of a given width, taking
// defaults from the library's registers. Dotless removal never applies to
// bottom accents. Widths are never negative.
func (lib *Library) Place(e *accent.Elem, baseWidth dimen.Dimen) Placement {
	size, dotless := e.Resolve(lib.regs)
	bottom := e.IsBottom(lib.classifier)
	return Placement{
		Bottom:  bottom,
		Width:   dimen.Max(dimen.Zero, size.Resolve(baseWidth)),
		Dotless: dotless && !bottom,
	}
}
