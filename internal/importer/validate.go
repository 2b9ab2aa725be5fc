package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the accepted deadline format.
const DateLayout = "2006-01-02"

// ValidateAssignmentFile checks every assignment before conversion.
// Returns a slice of all validation errors found.
func ValidateAssignmentFile(file *AssignmentFile) []error {
	var errs []error

	ids := make(map[string]bool)
	for i, a := range file.Assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)

		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		if a.Deadline == "" {
			errs = append(errs, fmt.Errorf("%s.deadline is required", prefix))
		} else if _, err := time.Parse(DateLayout, a.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, a.Deadline))
		}

		if a.Weight == "" {
			errs = append(errs, fmt.Errorf("%s.weight is required", prefix))
		} else if w, err := strconv.ParseFloat(strings.TrimSpace(a.Weight), 64); err != nil {
			errs = append(errs, fmt.Errorf("%s.weight: %q is not a number", prefix, a.Weight))
		} else if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 || w > 100 {
			errs = append(errs, fmt.Errorf("%s.weight %v must be between 0 and 100", prefix, w))
		}

		if a.ID != "" {
			if ids[a.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, a.ID))
			}
			ids[a.ID] = true
		}
	}

	return errs
}
