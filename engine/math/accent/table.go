package accent

// Entry is an accent of the accent table, together with the alternative
// strings designating it.
type Entry struct {
	Char    rune
	Aliases []string
}

// The order of entries is significant: lookup returns the first match.
// Symbols that can have a text presentation must explicitly list that
// alternative.
var table = [...]Entry{
	{'\u0300', []string{"`"}},
	{'\u0301', []string{"´"}},
	{'\u0302', []string{"^", "ˆ"}},
	{'\u0303', []string{"~", "∼", "˜"}},
	{'\u0304', []string{"¯"}},
	{'\u0305', []string{"-", "–", "‾", "−"}},
	{'\u0306', []string{"˘"}},
	{'\u0307', []string{".", "˙", "⋅"}},
	{'\u0308', []string{"¨"}},
	{'\u20db', nil},
	{'\u20dc', nil},
	{'\u030a', []string{"∘", "○"}},
	{'\u030b', []string{"˝"}},
	{'\u030c', []string{"ˇ"}},
	{'\u20d6', []string{"←"}},
	{'\u20d7', []string{"→", "⟶"}},
	{'\u20e1', []string{"↔", "↔\ufe0e", "⟷"}},
	{'\u20d0', []string{"↼"}},
	{'\u20d1', []string{"⇀"}},
}

// Table returns a copy of the accent table, in lookup order.
func Table() []Entry {
	entries := make([]Entry, len(table))
	for i, e := range table {
		entries[i] = Entry{Char: e.Char, Aliases: append([]string(nil), e.Aliases...)}
	}
	return entries
}

func (e Entry) hasAlias(s string) bool {
	for _, alias := range e.Aliases {
		if alias == s {
			return true
		}
	}
	return false
}

// lookup returns the index of the first table entry matching text, either
// by character or by alias.
func lookup(text string) (int, bool) {
	c, isChar := parseChar(text)
	for i := range table {
		if (isChar && table[i].Char == c) || table[i].hasAlias(text) {
			return i, true
		}
	}
	return -1, false
}

func indexOf(a Accent) (int, bool) {
	for i := range table {
		if table[i].Char == rune(a) {
			return i, true
		}
	}
	return -1, false
}
