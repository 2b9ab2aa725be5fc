package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/alexanderramin/cooked/internal/importer"
)

type importService struct{}

func NewImportService() ImportService {
	return &importService{}
}

func (s *importService) ImportAssignments(ctx context.Context, filePath string, loc *time.Location) ([]domain.Assignment, error) {
	file, err := importer.LoadAssignmentFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading assignments file: %w", err)
	}

	if errs := importer.ValidateAssignmentFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	assignments, err := importer.Convert(file, loc)
	if err != nil {
		return nil, fmt.Errorf("converting assignments: %w", err)
	}
	return assignments, nil
}
