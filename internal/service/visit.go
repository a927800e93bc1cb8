package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/repo"
)

// VisitService implements business logic for Visit operations.
// It holds a TxRunner in addition to the visits repo because check-in is a
// multi-step write (find-or-create visitor, then create the visit) that must
// run inside a single transaction.
type VisitService struct {
	tx     repo.TxRunner
	visits repo.VisitRepo
}

// NewVisitService constructs a VisitService backed by the provided tx runner
// and repo.
func NewVisitService(tx repo.TxRunner, visits repo.VisitRepo) *VisitService {
	return &VisitService{tx: tx, visits: visits}
}

// CheckInInput carries the check-in form fields into the service layer.
// String fields are expected to be trimmed by the handler.
type CheckInInput struct {
	VisitorName    string
	VisitorPhone   string
	VisitorIDProof string
	HostID         uuid.UUID
	Purpose        string
	VehicleNo      string
}

// CheckIn records a new visit, reusing or creating the visitor in the same
// transaction. The check-in timestamp is the current time.
// Returns domain.ErrValidation when a required field is missing or the host
// does not exist; no partial visitor or visit is persisted in that case.
func (s *VisitService) CheckIn(ctx context.Context, in CheckInInput) (domain.Visit, error) {
	if err := validateCheckIn(in); err != nil {
		return domain.Visit{}, err
	}

	var created domain.Visit
	err := s.tx.InTx(ctx, func(r repo.Store) error {
		if _, err := r.Hosts.GetByID(ctx, in.HostID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: host does not exist", domain.ErrValidation)
			}
			return fmt.Errorf("service.VisitService.CheckIn: %w", err)
		}

		visitor, err := findOrCreateVisitor(ctx, r.Visitors, in.VisitorName, in.VisitorPhone, in.VisitorIDProof)
		if err != nil {
			return err
		}

		created, err = r.Visits.Create(ctx, domain.Visit{
			VisitorID: visitor.ID,
			HostID:    in.HostID,
			Purpose:   in.Purpose,
			VehicleNo: in.VehicleNo,
			CheckIn:   time.Now(),
		})
		if err != nil {
			return fmt.Errorf("service.VisitService.CheckIn: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Visit{}, err
	}
	return created, nil
}

// CheckOut stamps the current time on an open visit.
// Returns alreadyOut = true together with the unchanged visit when the visit
// was checked out before this call — an informational no-op, not an error.
// Returns domain.ErrNotFound when no visit with that ID exists.
func (s *VisitService) CheckOut(ctx context.Context, id uuid.UUID) (visit domain.Visit, alreadyOut bool, err error) {
	current, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return domain.Visit{}, false, fmt.Errorf("service.VisitService.CheckOut: %w", err)
	}
	if current.CheckOut != nil {
		return current, true, nil
	}

	stamped, err := s.visits.CompleteCheckOut(ctx, id, time.Now())
	if errors.Is(err, domain.ErrNotFound) {
		// A concurrent check-out stamped the visit between our read and the
		// conditional update. Report the stamped visit as a no-op.
		current, err = s.visits.GetByID(ctx, id)
		if err != nil {
			return domain.Visit{}, false, fmt.Errorf("service.VisitService.CheckOut: %w", err)
		}
		return current, true, nil
	}
	if err != nil {
		return domain.Visit{}, false, fmt.Errorf("service.VisitService.CheckOut: %w", err)
	}
	return stamped, false, nil
}

// List returns the filtered, joined visit listing, most recent check-in first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VisitService) List(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error) {
	visits, err := s.visits.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.VisitService.List: %w", err)
	}
	if visits == nil {
		return []domain.VisitDetail{}, nil
	}
	return visits, nil
}

// StatsForDay returns the dashboard counters for the calendar day containing
// day, in day's location.
func (s *VisitService) StatsForDay(ctx context.Context, day time.Time) (domain.DailyStats, error) {
	start, end := domain.DayRange(day)
	stats, err := s.visits.Stats(ctx, start, end)
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("service.VisitService.StatsForDay: %w", err)
	}
	return stats, nil
}

// validateCheckIn enforces the check-in business rules.
//   - Visitor name and purpose must be non-empty (whitespace-only rejected).
//   - A host must be selected.
func validateCheckIn(in CheckInInput) error {
	if strings.TrimSpace(in.VisitorName) == "" {
		return fmt.Errorf("%w: visitor name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}
	if in.HostID == uuid.Nil {
		return fmt.Errorf("%w: host is required", domain.ErrValidation)
	}
	return nil
}
