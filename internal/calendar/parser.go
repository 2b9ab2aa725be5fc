package calendar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/emersion/go-ical"
)

// ParseIntervals extracts one busy interval per VEVENT carrying both a
// DTSTART and a DTEND. Events missing either field, with an unreadable date
// or ending before they start are skipped. Bare dates are read as midnight
// in loc; date-times are read as UTC.
//
// Empty or non-UTF-8 input yields no intervals and ErrEmptyDocument or
// ErrUndecodable; both are safe to treat as "no busy time".
func ParseIntervals(data []byte, loc *time.Location) ([]domain.Interval, error) {
	if loc == nil {
		loc = time.Local
	}
	if !utf8.Valid(data) {
		return nil, ErrUndecodable
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	intervals, err := decodeStructured(data, loc)
	if err != nil {
		// Line scan for documents go-ical rejects.
		return scanLenient(string(data), loc), nil
	}
	return intervals, nil
}

func decodeStructured(data []byte, loc *time.Location) ([]domain.Interval, error) {
	dec := ical.NewDecoder(bytes.NewReader(data))

	var intervals []domain.Interval
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return intervals, nil
		}
		if err != nil {
			return nil, err
		}
		if cal.Name != ical.CompCalendar {
			return nil, fmt.Errorf("unexpected top-level component %q", cal.Name)
		}

		for _, ev := range cal.Events() {
			startProp := ev.Props.Get(ical.PropDateTimeStart)
			endProp := ev.Props.Get(ical.PropDateTimeEnd)
			if startProp == nil || endProp == nil {
				continue
			}
			if iv, ok := buildInterval(startProp.Value, endProp.Value, loc); ok {
				intervals = append(intervals, iv)
			}
		}
	}
}

type pendingEvent struct {
	start, end       string
	hasStart, hasEnd bool
}

func scanLenient(text string, loc *time.Location) []domain.Interval {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var intervals []domain.Interval
	var current *pendingEvent
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "BEGIN:VEVENT":
			current = &pendingEvent{}
		case line == "END:VEVENT" && current != nil:
			if current.hasStart && current.hasEnd {
				if iv, ok := buildInterval(current.start, current.end, loc); ok {
					intervals = append(intervals, iv)
				}
			}
			current = nil
		case current != nil && strings.HasPrefix(line, ical.PropDateTimeStart):
			current.start, current.hasStart = fieldValue(line)
		case current != nil && strings.HasPrefix(line, ical.PropDateTimeEnd):
			current.end, current.hasEnd = fieldValue(line)
		}
	}
	return intervals
}

func fieldValue(line string) (string, bool) {
	_, value, ok := strings.Cut(line, ":")
	return value, ok
}

func buildInterval(startValue, endValue string, loc *time.Location) (domain.Interval, bool) {
	start, ok := decodeDate(startValue, loc)
	if !ok {
		return domain.Interval{}, false
	}
	end, ok := decodeDate(endValue, loc)
	if !ok || end.Before(start) {
		return domain.Interval{}, false
	}
	return domain.Interval{Start: start, End: end}, true
}

// decodeDate reads the two literal forms calendars emit:
//
//	20240115T093000Z  date-time, taken as UTC (seconds ignored)
//	20240115          bare date, taken as local midnight in loc
//
// Bare dates stay pinned to the local calendar day.
func decodeDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)

	if strings.Contains(value, "T") {
		if len(value) < 13 {
			return time.Time{}, false
		}
		y, mo, d, ok := datePart(value)
		if !ok {
			return time.Time{}, false
		}
		h, errH := strconv.Atoi(value[9:11])
		mi, errM := strconv.Atoi(value[11:13])
		if errH != nil || errM != nil {
			return time.Time{}, false
		}
		return time.Date(y, time.Month(mo), d, h, mi, 0, 0, time.UTC).In(loc), true
	}

	if len(value) < 8 {
		return time.Time{}, false
	}
	y, mo, d, ok := datePart(value)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, loc), true
}

func datePart(value string) (year, month, day int, ok bool) {
	var err error
	if year, err = strconv.Atoi(value[0:4]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(value[4:6]); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(value[6:8]); err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}
