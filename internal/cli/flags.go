package cli

import (
	"fmt"
	"time"
)

var nowLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseNow reads the --now flag in loc. An empty value means the current time.
func parseNow(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Now().In(loc), nil
	}
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now value %q (expected YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339)", value)
}
