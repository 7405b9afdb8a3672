// Package dimen implements dimensions, units and relative lengths.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/mathacc/core/percent"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// ErrFormat is returned for strings which cannot be parsed as a dimension
// or relative length.
var ErrFormat = errors.New("format error parsing dimension")

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[cminpxtsb]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the plain number.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return 0, false, ErrFormat
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch strings.ToLower(d[2]) {
		case "pt":
			scale = PT
		case "mm":
			scale = MM
		case "bp", "px":
			scale = BP
		case "cm":
			scale = CM
		case "in":
			scale = IN
		case "sp", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, ErrFormat
		}
	}
	n, err := strconv.ParseInt(d[1], 10, 32)
	if err != nil {
		return 0, false, ErrFormat
	}
	v, ok := scaled(n, scale)
	if !ok {
		return 0, false, ErrFormat
	}
	return v, ispcnt, nil
}

// scaled multiplies n by scale, failing if the result exceeds Infinity.
func scaled(n int64, scale Dimen) (Dimen, bool) {
	v := n * int64(scale)
	if v > Infinity || v < -Infinity {
		return 0, false
	}
	return Dimen(v), true
}

// --- Relative lengths ------------------------------------------------------

// Rel is a length relative to some other length, plus an absolute part,
// e.g. `120% + 1pt`. Relative parts refer to a length given at resolve time,
// for math accents this is the width of the accent's base.
type Rel struct {
	Ratio percent.Percent
	Abs   Dimen
}

// One is 100% without an absolute part.
var One = Rel{Ratio: percent.Hundred}

// Ratio creates a purely relative length.
func Ratio(p percent.Percent) Rel {
	return Rel{Ratio: p}
}

// Abs creates a purely absolute length.
func Abs(d Dimen) Rel {
	return Rel{Abs: d}
}

// IsZero is true if both parts are zero.
func (r Rel) IsZero() bool {
	return r.Ratio.IsZero() && r.Abs == 0
}

// Resolve computes the absolute length of r, relative to a given length.
func (r Rel) Resolve(to Dimen) Dimen {
	return Dimen(math.Round(r.Ratio.Ratio()*float64(to))) + r.Abs
}

func (r Rel) String() string {
	switch {
	case r.Abs == 0:
		return r.Ratio.String()
	case r.Ratio.IsZero():
		return fmt.Sprintf("%gpt", float64(r.Abs)/float64(PT))
	}
	return fmt.Sprintf("%s + %gpt", r.Ratio, float64(r.Abs)/float64(PT))
}

// ParseRel parses relative lengths like `150%`, `2pt` or `120%+1pt`.
// Terms are joined by '+'. Percentages must not be negative, and the
// absolute part must not exceed Infinity.
func ParseRel(s string) (Rel, error) {
	var rel Rel
	var abs int64
	terms := strings.Split(s, "+")
	for i, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			if i == 0 && len(terms) > 1 { // leading sign
				continue
			}
			return Rel{}, ErrFormat
		}
		if strings.HasSuffix(term, "%") {
			if strings.HasPrefix(term, "-") {
				return Rel{}, ErrFormat
			}
			p, err := percent.FromString(term)
			if err != nil {
				return Rel{}, ErrFormat
			}
			rel.Ratio += p
			continue
		}
		d, _, err := ParseDimen(term)
		if err != nil {
			return Rel{}, err
		}
		if abs += int64(d); abs > Infinity || abs < -Infinity {
			return Rel{}, ErrFormat
		}
	}
	rel.Abs = Dimen(abs)
	return rel, nil
}

// ---------------------------------------------------------------------------

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
