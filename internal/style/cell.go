package style

import (
	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

// Cell owns the Record of a single element. The record is only changed
// through Update and Reset; readers get copies.
type Cell struct {
	role        Role
	limits      Limits
	record      Record
	revision    uint64
	nextSub     int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(Record)
}

// NewCell creates a cell initialised with the defaults for role.
func NewCell(role Role) *Cell {
	return &Cell{
		role:   role,
		limits: LimitsFor(role),
		record: Defaults(role),
	}
}

// Role returns the element this cell belongs to.
func (c *Cell) Role() Role {
	return c.role
}

// Limits returns the slider bounds applied to this cell.
func (c *Cell) Limits() Limits {
	return c.limits
}

// Record returns a copy of the current record.
func (c *Cell) Record() Record {
	return c.record
}

// Revision counts the changes applied since creation.
func (c *Cell) Revision() uint64 {
	return c.revision
}

// Subscribe registers fn to be called with the new record after every change.
// The returned func removes the subscription; calling it twice is harmless.
func (c *Cell) Subscribe(fn func(Record)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextSub++
	id := c.nextSub
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range c.subscribers {
			if sub.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered subscriptions.
func (c *Cell) Subscribers() int {
	return len(c.subscribers)
}

// Update replaces exactly one field. Writing the value the field already
// holds is a no-op and does not notify subscribers.
func (c *Cell) Update(field Field, value Value) error {
	if err := c.limits.Check(field, value); err != nil {
		return boxerrors.NewUpdateError(c.role.String(), field.String(), err)
	}
	next, err := c.record.With(field, value)
	if err != nil {
		return boxerrors.NewUpdateError(c.role.String(), field.String(), err)
	}
	c.publish(next)
	return nil
}

// Reset restores the default record for the cell's role.
func (c *Cell) Reset() {
	c.publish(Defaults(c.role))
}

func (c *Cell) publish(next Record) {
	if next == c.record {
		return
	}
	c.record = next
	c.revision++
	for _, sub := range c.subscribers {
		sub.fn(next)
	}
}
