package svg

import (
	"fmt"
	"math"
	"slices"
)

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths. Odd-length arrays are
	// repeated once by renderers, as SVG specifies.
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// It returns nil when no lengths are given.
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	return &Dash{Array: slices.Clone(lengths)}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the sum of the array entries.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	return total
}

// IsDashed returns true if the pattern produces visible gaps.
func (d *Dash) IsDashed() bool {
	return d != nil && len(d.Array) > 0 && d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: slices.Clone(d.Array), Offset: d.Offset}
}

// validate rejects negative or non-finite entries and all-zero patterns.
func (d *Dash) validate() error {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	for i, v := range d.Array {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("svg: dash entry %d is %v: %w", i, v, ErrInvalidArgument)
		}
	}
	if d.PatternLength() <= 0 {
		return fmt.Errorf("svg: dash pattern sums to zero: %w", ErrInvalidArgument)
	}
	if math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0) {
		return fmt.Errorf("svg: dash offset is %v: %w", d.Offset, ErrInvalidArgument)
	}
	return nil
}
