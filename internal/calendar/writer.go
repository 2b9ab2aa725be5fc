package calendar

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/emersion/go-ical"
)

// WriterOptions controls the calendar envelope and event identifiers.
type WriterOptions struct {
	ProductID    string
	CalendarName string
	// TimeZone is advertised as X-WR-TIMEZONE; omitted when empty.
	TimeZone string
	// UIDDomain is the right-hand side of every event UID.
	UIDDomain string
	// Stamp is written as DTSTAMP on every event; the current time when zero.
	Stamp time.Time
}

// DefaultWriterOptions returns the envelope used when nothing is configured.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		ProductID:    "-//Cooked Study Planner//EN",
		CalendarName: "Study Plan",
		UIDDomain:    "cookedplanner",
	}
}

// EncodeCalendar renders events as a complete iCalendar document.
func EncodeCalendar(events []domain.ScheduleEvent, opts WriterOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCalendar(&buf, events, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCalendar writes one VEVENT per schedule event inside a VCALENDAR
// envelope. Lines end in CRLF.
func WriteCalendar(w io.Writer, events []domain.ScheduleEvent, opts WriterOptions) error {
	cal := ical.NewCalendar()
	setRaw(cal.Props, ical.PropVersion, "2.0")
	setRaw(cal.Props, ical.PropProductID, opts.ProductID)
	setRaw(cal.Props, ical.PropCalendarScale, "GREGORIAN")
	setRaw(cal.Props, ical.PropMethod, "PUBLISH")
	if opts.CalendarName != "" {
		setRaw(cal.Props, propWRCalName, opts.CalendarName)
	}
	if opts.TimeZone != "" {
		setRaw(cal.Props, propWRTimezone, opts.TimeZone)
	}

	if len(events) == 0 {
		return writeEnvelope(w, cal.Props)
	}

	for _, e := range events {
		cal.Children = append(cal.Children, buildEvent(e, opts).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

// envelopeOrder is the property order of an envelope written without events.
var envelopeOrder = []string{
	ical.PropVersion,
	ical.PropProductID,
	ical.PropCalendarScale,
	ical.PropMethod,
	propWRCalName,
	propWRTimezone,
}

// writeEnvelope writes a VCALENDAR with no components. go-ical refuses to
// encode an empty calendar.
func writeEnvelope(w io.Writer, props ical.Props) error {
	var b strings.Builder
	b.WriteString("BEGIN:" + ical.CompCalendar + "\r\n")
	for _, name := range envelopeOrder {
		if prop := props.Get(name); prop != nil {
			b.WriteString(name + ":" + prop.Value + "\r\n")
		}
	}
	b.WriteString("END:" + ical.CompCalendar + "\r\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func buildEvent(e domain.ScheduleEvent, opts WriterOptions) *ical.Event {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, EventUID(e, opts.UIDDomain))
	ev.Props.SetDateTime(ical.PropDateTimeStart, e.Start.UTC())
	ev.Props.SetDateTime(ical.PropDateTimeEnd, e.End.UTC())
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ev.Props.SetText(ical.PropSummary, Summary(e))
	ev.Props.SetText(ical.PropDescription, Description(e))
	setRaw(ev.Props, ical.PropStatus, "CONFIRMED")
	setRaw(ev.Props, ical.PropSequence, "0")
	return ev
}

func setRaw(props ical.Props, name, value string) {
	prop := ical.NewProp(name)
	prop.Value = value
	props.Set(prop)
}

// EventUID derives a UID that is unique within one export and identical
// across re-exports of the same plan.
func EventUID(e domain.ScheduleEvent, uidDomain string) string {
	if e.IsStudy() {
		return fmt.Sprintf("%s-session-%d@%s", e.AssignmentID, e.SessionIndex, uidDomain)
	}
	return fmt.Sprintf("%s-deadline@%s", e.AssignmentID, uidDomain)
}

// Summary returns the SUMMARY line for an event.
func Summary(e domain.ScheduleEvent) string {
	if e.IsStudy() {
		return "Study: " + e.AssignmentName
	}
	return "🚨 DUE: " + e.AssignmentName
}

// Description returns the DESCRIPTION text for an event.
func Description(e domain.ScheduleEvent) string {
	weight := FormatWeight(e.Weight)
	if e.IsStudy() {
		return fmt.Sprintf("Study session %s for %s (%s%% weight)\nDeadline: %s",
			e.SessionLabel(), e.AssignmentName, weight, e.Deadline.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("Assignment due! Weight: %s%%", weight)
}

// FormatWeight renders a weight without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
