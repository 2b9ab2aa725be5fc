// Package calendar reads busy intervals from iCalendar documents and writes
// schedules back out in the same format.
package calendar

import "errors"

const (
	// FileName is the name an exported plan is saved under.
	FileName = "study-plan.ics"
	// MediaType is the content type of an exported plan.
	MediaType = "text/calendar"
)

var (
	// ErrEmptyDocument is returned for input with no content.
	ErrEmptyDocument = errors.New("calendar document is empty")
	// ErrUndecodable is returned for input that is not UTF-8 text.
	ErrUndecodable = errors.New("calendar document is not valid text")
)

const (
	propWRCalName  = "X-WR-CALNAME"
	propWRTimezone = "X-WR-TIMEZONE"
)
