package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/repo"
)

// HostService implements business logic for Host operations.
type HostService struct {
	hosts repo.HostRepo
}

// NewHostService constructs a HostService backed by the provided HostRepo.
func NewHostService(r repo.HostRepo) *HostService {
	return &HostService{hosts: r}
}

// Create validates and persists a new host. Department is optional.
// Returns domain.ErrValidation when name is empty after trimming.
func (s *HostService) Create(ctx context.Context, name, department string) (domain.Host, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Host{}, fmt.Errorf("%w: host name is required", domain.ErrValidation)
	}
	host, err := s.hosts.Create(ctx, domain.Host{Name: name, Department: department})
	if err != nil {
		return domain.Host{}, fmt.Errorf("service.HostService.Create: %w", err)
	}
	return host, nil
}

// List returns all hosts in name order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *HostService) List(ctx context.Context) ([]domain.Host, error) {
	hosts, err := s.hosts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.HostService.List: %w", err)
	}
	if hosts == nil {
		return []domain.Host{}, nil
	}
	return hosts, nil
}
