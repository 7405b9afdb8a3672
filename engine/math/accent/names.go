package accent

// NamedAccent is a symbol name which, when called, applies an accent.
type NamedAccent struct {
	Name   string
	Symbol rune
}

var namedAccents = [...]NamedAccent{
	{"grave", '`'},
	{"acute", '´'},
	{"hat", '^'},
	{"tilde", '~'},
	{"macron", '¯'},
	{"dash", '‾'},
	{"breve", '˘'},
	{"dot", '.'},
	{"dot.double", '¨'},
	{"diaer", '¨'},
	{"dot.triple", '\u20db'},
	{"dot.quad", '\u20dc'},
	{"circle", '∘'},
	{"acute.double", '˝'},
	{"caron", 'ˇ'},
	{"arrow", '→'},
	{"arrow.l", '←'},
	{"arrow.l.r", '↔'},
	{"harpoon", '⇀'},
	{"harpoon.lt", '↼'},
}

// NamedAccents returns the symbol names of accents, e.g. "hat" for '^'.
func NamedAccents() []NamedAccent {
	return append([]NamedAccent(nil), namedAccents[:]...)
}
