/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"

	"github.com/npillmayer/mathacc/core/dimen"
)

// TypesettingParameter is a key into the typesetting registers.
type TypesettingParameter int

const (
	none          TypesettingParameter = iota
	P_ACCENTSIZE                       // size of math accents, relative to base width
	P_DOTLESS                          // remove dots of i and j below top accents
	P_MATHCLASSES                      // name of the combining-class classifier
	P_STOPPER
)

func (p TypesettingParameter) String() string {
	switch p {
	case P_ACCENTSIZE:
		return "P_ACCENTSIZE"
	case P_DOTLESS:
		return "P_DOTLESS"
	case P_MATHCLASSES:
		return "P_MATHCLASSES"
	}
	return fmt.Sprintf("TypesettingParameter(%d)", int(p))
}

// ParameterGroup holds the parameters set within one grouping level.
type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// TypesettingRegisters hold element defaults. Values pushed within a group
// shadow outer values until the group ends.
type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_ACCENTSIZE] = dimen.One  // relative length
	p[P_DOTLESS] = true          // a bool
	p[P_MATHCLASSES] = "unicode" // a string
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	checkKey(key)
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{
				params: make(map[TypesettingParameter]interface{}),
				level:  regs.grouplevel,
				next:   regs.groups,
			}
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	checkKey(key)
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func checkKey(key TypesettingParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) B(key TypesettingParameter) bool {
	return regs.Get(key).(bool)
}

func (regs *TypesettingRegisters) R(key TypesettingParameter) dimen.Rel {
	return regs.Get(key).(dimen.Rel)
}
