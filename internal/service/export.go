package service

import (
	"context"
	"fmt"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/repo"
)

// ExportService assembles the flat CSV export of the full visit log.
// It reuses the same joined listing query the visits page runs, unfiltered.
type ExportService struct {
	visits repo.VisitRepo
}

// NewExportService constructs an ExportService backed by the provided VisitRepo.
func NewExportService(visits repo.VisitRepo) *ExportService {
	return &ExportService{visits: visits}
}

// Export returns one pre-formatted row per visit, most recent check-in first.
// Always returns a non-nil slice; an empty log exports as headers only.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	visits, err := s.visits.List(ctx, domain.VisitFilter{Status: domain.StatusAll})
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(visits))
	for _, v := range visits {
		rows = append(rows, domain.NewExportRow(v))
	}
	return rows, nil
}
