package style

import (
	"fmt"
	"slices"

	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

// Range bounds a pixel slider. Values are Min + k*Step for k >= 0, capped at Max.
type Range struct {
	Min  int
	Max  int
	Step int
}

// DefaultRange mirrors an unconfigured slider: 0 to 100 in steps of 1.
func DefaultRange() Range {
	return Range{Min: 0, Max: 100, Step: 1}
}

// Contains reports whether v is reachable by the slider.
func (r Range) Contains(v int) bool {
	if v < r.Min || v > r.Max {
		return false
	}
	return r.step() == 1 || (v-r.Min)%r.step() == 0
}

// Clamp snaps v to the nearest reachable value, rounding half steps up.
func (r Range) Clamp(v int) int {
	if v <= r.Min {
		return r.Min
	}
	if v >= r.Max {
		v = r.Max
	}
	step := r.step()
	offset := v - r.Min
	snapped := r.Min + (offset+step/2)/step*step
	if snapped > r.Max {
		snapped -= step
	}
	return snapped
}

func (r Range) step() int {
	if r.Step <= 0 {
		return 1
	}
	return r.Step
}

// Limits holds the slider ranges for one element.
type Limits struct {
	Padding Range
	Margin  Range
	Width   Range
	Height  Range
}

// LimitsFor returns the fixed slider bounds for role.
func LimitsFor(role Role) Limits {
	size := 500
	switch role {
	case Child:
		size = 300
	case Grandchild:
		size = 200
	}
	return Limits{
		Padding: DefaultRange(),
		Margin:  DefaultRange(),
		Width:   Range{Min: 0, Max: size, Step: 1},
		Height:  Range{Min: 0, Max: size, Step: 1},
	}
}

// Range returns the slider range for a pixel field.
func (l Limits) Range(field Field) (Range, bool) {
	switch field {
	case Padding:
		return l.Padding, true
	case Margin:
		return l.Margin, true
	case Width:
		return l.Width, true
	case Height:
		return l.Height, true
	default:
		return Range{}, false
	}
}

// Check verifies that value lies inside the domain declared for field.
func (l Limits) Check(field Field, value Value) error {
	if value == nil || value.Kind() != field.Kind() {
		return boxerrors.NewValidationError(field.String(), "value kind does not match field", nil)
	}

	switch v := value.(type) {
	case Pixels:
		r, _ := l.Range(field)
		if !r.Contains(int(v)) {
			return boxerrors.NewValidationError(field.String(),
				fmt.Sprintf("%d outside [%d, %d] step %d", int(v), r.Min, r.Max, r.step()), nil)
		}
	case Position:
		if !slices.Contains(PositionOptions(), string(v)) {
			return boxerrors.NewValidationError(field.String(), fmt.Sprintf("unknown position %q", string(v)), nil)
		}
	case Display:
		if !slices.Contains(DisplayOptions(), string(v)) {
			return boxerrors.NewValidationError(field.String(), fmt.Sprintf("unknown display %q", string(v)), nil)
		}
	case Color:
		if !v.Canonical() {
			return boxerrors.NewValidationError(field.String(), fmt.Sprintf("%q is not a #RRGGBB color", string(v)), nil)
		}
	}
	return nil
}
