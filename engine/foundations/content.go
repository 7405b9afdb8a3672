package foundations

import (
	"strconv"
	"strings"
)

// Content is a node of a content tree. Elements are compared by value.
type Content interface {
	ElemName() string
	Repr() string
	Equal(other Content) bool
}

// Packed downcasts content to a concrete element type.
func Packed[T Content](c Content) (T, bool) {
	elem, ok := c.(T)
	return elem, ok
}

// --- Symbols ---------------------------------------------------------------

// SymbolElem is content consisting of a symbol, e.g. a math operator or
// an arrow written directly into math.
type SymbolElem struct {
	Text string
}

// NewSymbol creates a symbol element.
func NewSymbol(text string) *SymbolElem {
	return &SymbolElem{Text: text}
}

func (e *SymbolElem) ElemName() string { return "symbol" }

func (e *SymbolElem) Repr() string {
	return "[" + e.Text + "]"
}

func (e *SymbolElem) Equal(other Content) bool {
	o, ok := other.(*SymbolElem)
	return ok && o.Text == e.Text
}

// --- Text ------------------------------------------------------------------

// TextElem is plain text content.
type TextElem struct {
	Text string
}

// NewText creates a text element.
func NewText(text string) *TextElem {
	return &TextElem{Text: text}
}

func (e *TextElem) ElemName() string { return "text" }

func (e *TextElem) Repr() string {
	return "text(" + strconv.Quote(e.Text) + ")"
}

func (e *TextElem) Equal(other Content) bool {
	o, ok := other.(*TextElem)
	return ok && o.Text == e.Text
}

// --- Sequences -------------------------------------------------------------

// SequenceElem is a run of content.
type SequenceElem struct {
	Children []Content
}

// Sequence creates a sequence element from a list of content.
func Sequence(children ...Content) *SequenceElem {
	return &SequenceElem{Children: children}
}

func (e *SequenceElem) ElemName() string { return "sequence" }

func (e *SequenceElem) Repr() string {
	var b strings.Builder
	b.WriteString("sequence(")
	for i, c := range e.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Repr())
	}
	b.WriteString(")")
	return b.String()
}

func (e *SequenceElem) Equal(other Content) bool {
	o, ok := other.(*SequenceElem)
	if !ok || len(o.Children) != len(e.Children) {
		return false
	}
	for i, c := range e.Children {
		if !ContentEqual(c, o.Children[i]) {
			return false
		}
	}
	return true
}

// ContentEqual compares two pieces of content, either of which may be nil.
func ContentEqual(a, b Content) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
