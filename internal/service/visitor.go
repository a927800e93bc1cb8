// Package service contains the business logic for the visitor log.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/repo"
)

// VisitorService implements business logic for Visitor operations.
type VisitorService struct {
	visitors repo.VisitorRepo
}

// NewVisitorService constructs a VisitorService backed by the provided VisitorRepo.
func NewVisitorService(r repo.VisitorRepo) *VisitorService {
	return &VisitorService{visitors: r}
}

// FindOrCreate returns the visitor matching the exact (name, phone) pair,
// creating one with idProof attached when no match exists.
// Returns domain.ErrValidation when name is empty after trimming.
func (s *VisitorService) FindOrCreate(ctx context.Context, name, phone, idProof string) (domain.Visitor, error) {
	return findOrCreateVisitor(ctx, s.visitors, name, phone, idProof)
}

// List returns all visitors, most recently created first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VisitorService) List(ctx context.Context) ([]domain.Visitor, error) {
	visitors, err := s.visitors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VisitorService.List: %w", err)
	}
	if visitors == nil {
		return []domain.Visitor{}, nil
	}
	return visitors, nil
}

// findOrCreateVisitor is the shared find-or-create used both standalone and
// inside the check-in transaction. An existing match is returned untouched:
// its phone and id_proof are never overwritten by later input.
func findOrCreateVisitor(ctx context.Context, visitors repo.VisitorRepo, name, phone, idProof string) (domain.Visitor, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Visitor{}, fmt.Errorf("%w: visitor name is required", domain.ErrValidation)
	}

	existing, err := visitors.FindByNamePhone(ctx, name, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Visitor{}, fmt.Errorf("service.findOrCreateVisitor: %w", err)
	}

	created, err := visitors.Create(ctx, domain.Visitor{Name: name, Phone: phone, IDProof: idProof})
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("service.findOrCreateVisitor: %w", err)
	}
	return created, nil
}
