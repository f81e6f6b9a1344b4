package style

import (
	"fmt"

	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

// Record is the seven-field box-model style of one element.
type Record struct {
	Padding    Pixels
	Margin     Pixels
	Width      Pixels
	Height     Pixels
	Position   Position
	Display    Display
	Background Color
}

// Get returns the value stored in field.
func (r Record) Get(field Field) Value {
	switch field {
	case Padding:
		return r.Padding
	case Margin:
		return r.Margin
	case Width:
		return r.Width
	case Height:
		return r.Height
	case PositionField:
		return r.Position
	case DisplayField:
		return r.Display
	case BackgroundColor:
		return r.Background
	default:
		return nil
	}
}

// With returns a copy of r with field replaced by value. Every other field is
// carried over unchanged. The value's kind must match the field.
func (r Record) With(field Field, value Value) (Record, error) {
	if value == nil {
		return r, boxerrors.NewValidationError(field.String(), "value is nil", nil)
	}
	if value.Kind() != field.Kind() {
		return r, boxerrors.NewValidationError(field.String(),
			fmt.Sprintf("expected %s value, got %s", field.Kind(), value.Kind()), nil)
	}

	switch field {
	case Padding:
		r.Padding = value.(Pixels)
	case Margin:
		r.Margin = value.(Pixels)
	case Width:
		r.Width = value.(Pixels)
	case Height:
		r.Height = value.(Pixels)
	case PositionField:
		r.Position = value.(Position)
	case DisplayField:
		r.Display = value.(Display)
	case BackgroundColor:
		r.Background = value.(Color)
	}
	return r, nil
}

// Diff returns the fields whose values differ between r and other.
func (r Record) Diff(other Record) []Field {
	var changed []Field
	for _, f := range Fields() {
		if r.Get(f) != other.Get(f) {
			changed = append(changed, f)
		}
	}
	return changed
}
