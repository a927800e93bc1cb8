package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.

type mockVisitorRepo struct {
	create          func(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error)
	findByNamePhone func(ctx context.Context, name, phone string) (domain.Visitor, error)
	list            func(ctx context.Context) ([]domain.Visitor, error)
}

func (m *mockVisitorRepo) Create(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	return m.create(ctx, visitor)
}
func (m *mockVisitorRepo) FindByNamePhone(ctx context.Context, name, phone string) (domain.Visitor, error) {
	return m.findByNamePhone(ctx, name, phone)
}
func (m *mockVisitorRepo) List(ctx context.Context) ([]domain.Visitor, error) {
	return m.list(ctx)
}

type mockHostRepo struct {
	create  func(ctx context.Context, host domain.Host) (domain.Host, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Host, error)
	list    func(ctx context.Context) ([]domain.Host, error)
}

func (m *mockHostRepo) Create(ctx context.Context, host domain.Host) (domain.Host, error) {
	return m.create(ctx, host)
}
func (m *mockHostRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Host, error) {
	return m.getByID(ctx, id)
}
func (m *mockHostRepo) List(ctx context.Context) ([]domain.Host, error) {
	return m.list(ctx)
}

type mockVisitRepo struct {
	create           func(ctx context.Context, visit domain.Visit) (domain.Visit, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Visit, error)
	completeCheckOut func(ctx context.Context, id uuid.UUID, at time.Time) (domain.Visit, error)
	list             func(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error)
	stats            func(ctx context.Context, dayStart, dayEnd time.Time) (domain.DailyStats, error)
}

func (m *mockVisitRepo) Create(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	return m.create(ctx, visit)
}
func (m *mockVisitRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Visit, error) {
	return m.getByID(ctx, id)
}
func (m *mockVisitRepo) CompleteCheckOut(ctx context.Context, id uuid.UUID, at time.Time) (domain.Visit, error) {
	return m.completeCheckOut(ctx, id, at)
}
func (m *mockVisitRepo) List(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error) {
	return m.list(ctx, f)
}
func (m *mockVisitRepo) Stats(ctx context.Context, dayStart, dayEnd time.Time) (domain.DailyStats, error) {
	return m.stats(ctx, dayStart, dayEnd)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.VisitorRepo = (*mockVisitorRepo)(nil)
	_ repo.HostRepo    = (*mockHostRepo)(nil)
	_ repo.VisitRepo   = (*mockVisitRepo)(nil)
)

// fakeTxRunner satisfies repo.TxRunner without a database: it hands fn a Store
// assembled from the test's mocks. There is nothing to commit or roll back, so
// fn's error is simply returned.
type fakeTxRunner struct {
	store repo.Store
}

func (f *fakeTxRunner) InTx(_ context.Context, fn func(repo.Store) error) error {
	return fn(f.store)
}

var _ repo.TxRunner = (*fakeTxRunner)(nil)
