// Package price provides a nullable price cell with a total order in which
// the absent value sorts below every present one.
package price

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/stockmax/pkg/constants"
	"github.com/spf13/cast"
)

// Mode selects how two present prices are ordered.
type Mode string

const (
	// Numeric orders prices by their parsed float value.
	Numeric Mode = constants.CompareNumeric
	// Lexical orders prices by their raw text.
	Lexical Mode = constants.CompareLexical
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Numeric, Lexical:
		return Mode(s), nil
	case "":
		return Numeric, nil
	}
	return "", fmt.Errorf("expected comparison mode of %s or %s, got %s",
		Numeric, Lexical, s)
}

// Price is a single table cell. The zero value is none.
type Price struct {
	raw     string
	value   float64
	numeric bool
	present bool
}

// None returns the absent price.
func None() Price {
	return Price{}
}

// Parse reads a raw cell. Blank cells are none. In Numeric mode a non-blank
// cell must hold a finite number.
func Parse(raw string, mode Mode) (Price, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return None(), nil
	}
	if mode == Lexical {
		return Price{raw: raw, present: true}, nil
	}
	v, err := cast.ToFloat64E(trimmed)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return None(), fmt.Errorf("%q is not a number", raw)
	}
	return Price{raw: trimmed, value: v, numeric: true, present: true}, nil
}

// IsNone reports whether p is the absent price.
func (p Price) IsNone() bool {
	return !p.present
}

// String returns the cell text as it appeared in the input, or "" for none.
func (p Price) String() string {
	return p.raw
}

// Compare returns -1, 0 or +1. None is less than any present price. Two
// numeric prices compare by value; otherwise by raw text.
func Compare(a, b Price) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return -1
	case !b.present:
		return 1
	}
	if a.numeric && b.numeric {
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		}
		return 0
	}
	return strings.Compare(a.raw, b.raw)
}

// Max returns the larger of a and b, preferring a on ties.
func Max(a, b Price) Price {
	if Compare(b, a) > 0 {
		return b
	}
	return a
}

// MaxOf folds candidates into a single maximum. An empty list yields none.
func MaxOf(candidates ...Price) Price {
	result := None()
	for _, c := range candidates {
		result = Max(result, c)
	}
	return result
}
