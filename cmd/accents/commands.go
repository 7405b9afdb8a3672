package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/mathacc/core"
	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/mathacc/engine/foundations"
	"github.com/npillmayer/mathacc/engine/math/accent"
	"github.com/pterm/pterm"
)

type Op struct {
	code int
	args []string
}

const (
	QUIT int = iota
	HELP
	LIST
	NAMES
	LOOKUP
	CLASSIFY
	APPLY
)

var commands = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"list":     LIST,
	"names":    NAMES,
	"lookup":   LOOKUP,
	"classify": CLASSIFY,
	"apply":    APPLY,
}

func parseCommand(line string) Op {
	fields := strings.Fields(line)
	op := Op{code: HELP, args: fields[1:]}
	if code, ok := commands[strings.ToLower(fields[0])]; ok {
		op.code = code
	}
	tracer().Debugf("parse command = %v", fields)
	return op
}

var errUsage = errors.New("usage")

func usage(format string) error {
	return core.WrapError(errUsage, core.EMISSING, "usage: %s", format)
}

func (intp *Intp) execute(op Op) (bool, error) {
	switch op.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LIST:
		return false, intp.list()
	case NAMES:
		return false, intp.names()
	case LOOKUP:
		if len(op.args) != 1 {
			return false, usage("lookup <text>")
		}
		return false, lookup(op.args[0])
	case CLASSIFY:
		if len(op.args) != 1 {
			return false, usage("classify <text>")
		}
		return false, intp.classify(op.args[0])
	case APPLY:
		if len(op.args) < 2 {
			return false, usage("apply <accent> <base> [size:<rel>] [dotless:<bool>]")
		}
		return false, intp.apply(op.args[0], op.args[1], op.args[2:])
	}
	return false, nil
}

func (intp *Intp) list() error {
	data := pterm.TableData{{"#", "Accent", "Code point", "Name", "Aliases", "Placement"}}
	for i, e := range accent.Table() {
		a := accent.Accent(e.Char)
		data = append(data, []string{
			strconv.Itoa(i),
			"◌" + a.String(),
			a.Codepoint(),
			a.Name(),
			strings.Join(e.Aliases, " "),
			placement(a.IsBottom(intp.lib.Classifier())),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) names() error {
	data := pterm.TableData{{"Name", "Symbol", "Accent", "Code point"}}
	for _, n := range accent.NamedAccents() {
		a, _ := accent.Combining(string(n.Symbol))
		data = append(data, []string{n.Name, string(n.Symbol), "◌" + a.String(), a.Codepoint()})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func lookup(text string) error {
	if a, ok := accent.Combining(text); ok {
		pterm.Printfln("%q selects accent %s %s (%s)", text, a, a.Codepoint(), a.Name())
		return nil
	}
	if a, ok := accent.Normalize(text); ok {
		pterm.Printfln("%q is not in the accent table, taken verbatim as %s (%s)",
			text, a.Codepoint(), a.Name())
		return nil
	}
	return core.WrapError(accent.ErrInvalidAccentText, core.EINVALID, "%q: %v", text, accent.ErrInvalidAccentText)
}

func (intp *Intp) classify(text string) error {
	a, ok := accent.Normalize(text)
	if !ok {
		return core.WrapError(accent.ErrInvalidAccentText, core.EINVALID, "%q: %v", text, accent.ErrInvalidAccentText)
	}
	pterm.Printfln("%s %s has canonical combining class %d", a.Codepoint(), a.Name(),
		accent.CombiningClass(rune(a)))
	for _, name := range []string{accent.UnicodeClassification, accent.CuratedClassification} {
		c, err := accent.NewClassifier(name)
		if err != nil {
			return err
		}
		active := ""
		if name == intp.lib.Classifier().Name() {
			active = " (active)"
		}
		pterm.Printfln("  %-8s %s%s", name, placement(a.IsBottom(c)), active)
	}
	return nil
}

// apply calls a named accent, or the generic accent function otherwise.
func (intp *Intp) apply(acc, base string, named []string) error {
	var callee foundations.Value
	args := foundations.NewArgs(foundations.Str(base))
	if v, ok := intp.lib.Lookup(acc); ok && v.Type() == foundations.TypeSymbol {
		callee = v
	} else {
		callee, _ = intp.lib.Lookup("accent")
		args.Push(foundations.Str(acc))
	}
	for _, arg := range named {
		name, value, found := strings.Cut(arg, ":")
		if !found {
			return usage("named arguments are given as name:value")
		}
		v, err := parseValue(value)
		if err != nil {
			return err
		}
		args.With(name, v)
	}
	tracer().Debugf("calling %s with %s", callee.Repr(), args)
	v, err := intp.lib.Call(callee, args)
	if err != nil {
		return err
	}
	elem, ok := foundations.Packed[*accent.Elem](v.(foundations.ContentValue).Content)
	if !ok {
		return core.Error(core.EINTERNAL, "accent call returned %s", v.Repr())
	}
	pterm.Println(v.Repr())
	pv := preview(base, elem.Accent())
	p := intp.lib.Place(elem, dimen.Dimen(pv.baseCells)*cellWidth)
	pterm.Printfln("  %s  placed %s, width %.2fpt, dotless %v", pv.text, placement(p.Bottom),
		printersPoints(p.Width), p.Dotless)
	pterm.Printfln("  %d grapheme(s), %d cell(s)", pv.graphemes, pv.cells)
	return nil
}

// parseValue interprets the value of a named argument.
func parseValue(s string) (foundations.Value, error) {
	if b, err := strconv.ParseBool(s); err == nil {
		return foundations.Bool(b), nil
	}
	if r, err := dimen.ParseRel(s); err == nil {
		return foundations.RelValue(r), nil
	}
	return foundations.Str(s), nil
}

// printersPoints converts d to printer's points (1/72.27 inch).
func printersPoints(d dimen.Dimen) float64 {
	return float64(d) / float64(dimen.PT)
}

func placement(bottom bool) string {
	if bottom {
		return "below"
	}
	return "above"
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	list                       list the accent table
	names                      list the named accents
	lookup <text>              resolve text to an accent
	classify <text>            show where an accent is placed
	apply <accent> <base> ...  attach an accent, with optional size:<rel> and dotless:<bool>
	help                       show this overview
	quit                       leave (or <ctrl>D)

	Accents may be given as combining characters, aliases like ^ or →, or as
	names like hat or arrow.l.r. Examples:

	apply hat x
	apply → v size:150%
	apply ^ i dotless:false
	`)
}
