// README: Common money/duration range value object used across modules.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Currency is the only currency the catalog is authored in.
const Currency = "KES"

// Range is an inclusive [Min, Max] pair of whole shillings or minutes.
// It is serialised as a two-element JSON array.
type Range struct {
	Min int64
	Max int64
}

// NewRange builds a Range from two bounds.
func NewRange(min, max int64) Range {
	return Range{Min: min, Max: max}
}

// Single builds the degenerate range for a single figure.
func Single(v int64) Range {
	return Range{Min: v, Max: v}
}

// Valid reports whether Min <= Max and neither bound is negative.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

// IsZero reports whether both bounds are zero.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Scale multiplies both bounds by every factor in order and truncates once
// at the end, so int(base*a*b) is computed exactly as written.
func (r Range) Scale(factors ...float64) Range {
	lo, hi := float64(r.Min), float64(r.Max)
	for _, f := range factors {
		lo *= f
		hi *= f
	}
	return Range{Min: int64(lo), Max: int64(hi)}
}

// Add returns the bound-wise sum of two ranges.
func (r Range) Add(o Range) Range {
	return Range{Min: r.Min + o.Min, Max: r.Max + o.Max}
}

// Plus adds a flat amount to both bounds.
func (r Range) Plus(v int64) Range {
	return Range{Min: r.Min + v, Max: r.Max + v}
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Thousands formats v with comma separators, e.g. 25000 -> "25,000".
func Thousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := v < 0
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{r.Min, r.Max})
}

// UnmarshalJSON accepts a [min, max] array or a bare number, which becomes a
// single-value range.
func (r *Range) UnmarshalJSON(data []byte) error {
	var single int64
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Single(single)
		return nil
	}
	var pair []int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range must be a [min, max] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("range must have exactly 2 elements, got %d", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}
