package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/repo"
	"github.com/gatehouse/visitor-log/testutil"
)

// newTestStore opens a transaction against the test database and returns a
// Store backed by that transaction. The transaction is automatically rolled
// back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies migrations before any
// test in this package runs.
func newTestStore(t *testing.T) repo.Store {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewStore(tx)
}

// visitorFixture returns a domain.Visitor with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func visitorFixture() domain.Visitor {
	return domain.Visitor{
		Name:    "Asha Verma",
		Phone:   "9876543210",
		IDProof: "DL-1234",
	}
}

// newVisitFixture inserts a visitor, a host, and an open visit checked in at
// the given time, and returns the visit. Most visit tests need all three.
func newVisitFixture(t *testing.T, s repo.Store, checkIn time.Time) domain.Visit {
	t.Helper()
	ctx := context.Background()

	visitor, err := s.Visitors.Create(ctx, visitorFixture())
	require.NoError(t, err)

	host, err := s.Hosts.Create(ctx, domain.Host{Name: "Prof. Sharma", Department: "Computer Science"})
	require.NoError(t, err)

	visit, err := s.Visits.Create(ctx, domain.Visit{
		VisitorID: visitor.ID,
		HostID:    host.ID,
		Purpose:   "Project meeting",
		VehicleNo: "KA-01-AB-1234",
		CheckIn:   checkIn,
	})
	require.NoError(t, err)
	return visit
}
