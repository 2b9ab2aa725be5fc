package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/google/uuid"
)

// assignmentNamespace seeds derived assignment IDs.
var assignmentNamespace = uuid.MustParse("6f1c1b0e-52a4-4b7e-9a55-3c1d2f0a7e11")

// Convert transforms a validated AssignmentFile into domain assignments with
// deadlines at local midnight in loc.
// Call ValidateAssignmentFile first; Convert assumes the file is valid.
func Convert(file *AssignmentFile, loc *time.Location) ([]domain.Assignment, error) {
	if loc == nil {
		loc = time.Local
	}

	assignments := make([]domain.Assignment, 0, len(file.Assignments))
	for i, a := range file.Assignments {
		deadline, err := time.ParseInLocation(DateLayout, a.Deadline, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing assignments[%d].deadline: %w", i, err)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(a.Weight), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing assignments[%d].weight: %w", i, err)
		}

		id := a.ID
		if id == "" {
			id = DeriveID(i, a.Name, a.Deadline)
		}

		assignments = append(assignments, domain.Assignment{
			ID:       id,
			Name:     strings.TrimSpace(a.Name),
			Deadline: deadline,
			Weight:   weight,
		})
	}
	return assignments, nil
}

// DeriveID returns a name-based UUID for an assignment without an explicit
// id, so exporting the same file twice yields the same event UIDs.
func DeriveID(index int, name, deadline string) string {
	key := fmt.Sprintf("%d|%s|%s", index, strings.TrimSpace(name), deadline)
	return uuid.NewSHA1(assignmentNamespace, []byte(key)).String()
}
