package style

import (
	"fmt"

	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

// Sheet groups the three independent cells. It shares no state between
// them; it only routes an update to the cell owning the role.
type Sheet struct {
	cells [3]*Cell
}

// NewSheet creates a sheet with every element at its defaults.
func NewSheet() *Sheet {
	s := &Sheet{}
	for _, role := range Roles() {
		s.cells[role] = NewCell(role)
	}
	return s
}

// Cell returns the cell for role, or nil for an unknown role.
func (s *Sheet) Cell(role Role) *Cell {
	if !role.valid() {
		return nil
	}
	return s.cells[role]
}

// Record returns a copy of the record for role.
func (s *Sheet) Record(role Role) Record {
	if c := s.Cell(role); c != nil {
		return c.Record()
	}
	return Record{}
}

// Update sets one field of one element's record.
func (s *Sheet) Update(role Role, field Field, value Value) error {
	c := s.Cell(role)
	if c == nil {
		return boxerrors.NewUpdateError("", field.String(),
			boxerrors.NewValidationError("element", fmt.Sprintf("unknown element %d", int(role)), nil))
	}
	return c.Update(field, value)
}

// Reset restores the defaults of a single element.
func (s *Sheet) Reset(role Role) {
	if c := s.Cell(role); c != nil {
		c.Reset()
	}
}

// ResetAll restores the defaults of every element.
func (s *Sheet) ResetAll() {
	for _, c := range s.cells {
		c.Reset()
	}
}
