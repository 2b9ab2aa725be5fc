package domain

import "time"

// Assignment is one weighted deadline supplied by the caller. Deadline holds
// the due date at local midnight; the time of day carries no meaning.
type Assignment struct {
	ID       string
	Name     string
	Deadline time.Time
	Weight   float64
}

// DeadlineAt returns the end-of-day reminder instant for the assignment:
// the deadline date at 23:59 in loc.
func (a Assignment) DeadlineAt(loc *time.Location) time.Time {
	d := a.Deadline.In(loc)
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 0, 0, loc)
}
