// Package percent implements a simple type for percentage values.
// Percentages are not capped at 100%, as they are used for scaling
// (an accent may be 150% of the width of its base).
package percent

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values.
// 100% is stored as 100.
type Percent float64

// Hundred is 100%, i.e. a ratio of 1.
const Hundred Percent = 100

// ErrNotAPercentage is returned when parsing a string without a trailing '%'.
var ErrNotAPercentage = errors.New("not a percentage")

func FromInt(n int) Percent {
	if n <= 0 {
		return Percent(0)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case math.IsInf(f, 1):
		return Percent(math.MaxFloat32)
	}
	return Percent(f)
}

// FromRatio converts a ratio like 1.5 to a percentage (150%).
func FromRatio(r float64) Percent {
	return FromFloat(r * 100)
}

// FromString parses strings like "150%" or " 87.5 % ".
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, ErrNotAPercentage
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return FromFloat(f), nil
}

// Ratio returns p as a factor, i.e. 150% yields 1.5.
func (p Percent) Ratio() float64 {
	return float64(p) / 100
}

// IsZero is true for 0%.
func (p Percent) IsZero() bool {
	return p == 0
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}
