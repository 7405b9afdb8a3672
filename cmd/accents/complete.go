package main

import (
	"strings"

	"github.com/derekparker/trie"
)

// completer completes commands and library names at the cursor.
type completer struct {
	names *trie.Trie
}

func newCompleter(names []string) *completer {
	c := &completer{names: trie.New()}
	for cmd := range commands {
		c.names.Add(cmd, nil)
	}
	for _, name := range names {
		c.names.Add(name, nil)
	}
	return c
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	word := head[strings.LastIndexAny(head, " \t")+1:]
	if word == "" {
		return nil, 0
	}
	var candidates [][]rune
	for _, name := range c.names.PrefixSearch(word) {
		candidates = append(candidates, []rune(name[len(word):]))
	}
	return candidates, len([]rune(word))
}
