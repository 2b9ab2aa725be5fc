package service

import (
	"fmt"
	"time"
)

// resolveNow returns the request's reference instant, or the current local
// time. Every run reads the clock once.
func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("assignment validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
