package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AssignmentFile is the top-level structure of an assignments file. JSON
// files are accepted too, since JSON parses as YAML.
type AssignmentFile struct {
	Assignments []AssignmentImport `yaml:"assignments" json:"assignments"`
}

// AssignmentImport is one assignment as written by the user. Weight stays a
// string until validation so "20", 20 and "12.5" are all accepted.
type AssignmentImport struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Name     string `yaml:"name" json:"name"`
	Deadline string `yaml:"deadline" json:"deadline"`
	Weight   string `yaml:"weight" json:"weight"`
}

// LoadAssignmentFile reads and parses an assignments file.
func LoadAssignmentFile(path string) (*AssignmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseAssignmentFile(data)
}

// ParseAssignmentFile parses assignments from YAML or JSON bytes.
func ParseAssignmentFile(data []byte) (*AssignmentFile, error) {
	var file AssignmentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing assignments file: %w", err)
	}
	return &file, nil
}
