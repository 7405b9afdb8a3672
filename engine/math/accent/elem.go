package accent

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/mathacc/core/parameters"
	"github.com/npillmayer/mathacc/engine/foundations"
)

// Elem attaches an accent to a base.
//
// Size and dotless have defaults (100% and true); an element remembers
// whether they have been set explicitly, so that typesetting registers may
// supply defaults for unset properties.
type Elem struct {
	base       foundations.Content
	accent     Accent
	size       dimen.Rel
	sizeSet    bool
	dotless    bool
	dotlessSet bool
}

// New creates an accent element with default size and dotless setting.
func New(base foundations.Content, a Accent) *Elem {
	return &Elem{
		base:    base,
		accent:  a,
		size:    dimen.One,
		dotless: true,
	}
}

// WithSize returns a copy of e with an explicit size, relative to the width
// of the base.
func (e *Elem) WithSize(size dimen.Rel) *Elem {
	c := *e
	c.size, c.sizeSet = size, true
	return &c
}

// WithDotless returns a copy of e with an explicit dotless setting, i.e.
// whether the dots of lowercase i and j are removed below top accents.
func (e *Elem) WithDotless(dotless bool) *Elem {
	c := *e
	c.dotless, c.dotlessSet = dotless, true
	return &c
}

// Base returns the content the accent is attached to.
func (e *Elem) Base() foundations.Content {
	return e.base
}

// Accent returns the accent of e.
func (e *Elem) Accent() Accent {
	return e.accent
}

// Size returns the size of the accent and whether it has been set explicitly.
func (e *Elem) Size() (dimen.Rel, bool) {
	return e.size, e.sizeSet
}

// Dotless returns the dotless setting and whether it has been set explicitly.
func (e *Elem) Dotless() (bool, bool) {
	return e.dotless, e.dotlessSet
}

// Resolve returns the effective size and dotless setting. Properties not
// set explicitly are taken from the typesetting registers; with regs being
// nil, the element defaults apply.
func (e *Elem) Resolve(regs *parameters.TypesettingRegisters) (size dimen.Rel, dotless bool) {
	size, dotless = e.size, e.dotless
	if regs == nil {
		return
	}
	if !e.sizeSet {
		size = regs.R(parameters.P_ACCENTSIZE)
	}
	if !e.dotlessSet {
		dotless = regs.B(parameters.P_DOTLESS)
	}
	return
}

// IsBottom is true if the accent is placed below the base. See
// Accent.IsBottom.
func (e *Elem) IsBottom(c Classifier) bool {
	return e.accent.IsBottom(c)
}

// ElemName is "accent".
func (e *Elem) ElemName() string { return "accent" }

// Repr returns a representation like `accent([x], "→", size: 150%)`.
func (e *Elem) Repr() string {
	var b strings.Builder
	b.WriteString("accent(")
	if e.base == nil {
		b.WriteString("[]")
	} else {
		b.WriteString(e.base.Repr())
	}
	b.WriteString(", ")
	b.WriteString(strconv.Quote(e.accent.String()))
	if e.sizeSet {
		b.WriteString(", size: ")
		b.WriteString(e.size.String())
	}
	if e.dotlessSet {
		b.WriteString(", dotless: ")
		b.WriteString(strconv.FormatBool(e.dotless))
	}
	b.WriteString(")")
	return b.String()
}

// Equal compares accent elements, including whether properties have been
// set explicitly.
func (e *Elem) Equal(other foundations.Content) bool {
	o, ok := other.(*Elem)
	if !ok || o == nil || e == nil {
		return ok && o == e
	}
	return e.accent == o.accent &&
		e.size == o.size && e.sizeSet == o.sizeSet &&
		e.dotless == o.dotless && e.dotlessSet == o.dotlessSet &&
		foundations.ContentEqual(e.base, o.base)
}

var _ foundations.Content = (*Elem)(nil)
