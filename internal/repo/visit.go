package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gatehouse/visitor-log/internal/domain"
)

// VisitRepo defines the persistence operations for Visits.
type VisitRepo interface {
	// Create inserts a new visit and returns the persisted record.
	// CheckIn must be set by the caller; CheckOut starts absent.
	Create(ctx context.Context, visit domain.Visit) (domain.Visit, error)

	// GetByID retrieves a single visit by its UUID primary key.
	// Returns domain.ErrNotFound if no visit with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Visit, error)

	// CompleteCheckOut stamps check_out = at on the visit, but only if the
	// visit is still open. Returns domain.ErrNotFound when no open visit with
	// that ID exists — either the ID is unknown or the visit was already
	// checked out; callers distinguish the two via GetByID.
	// The conditional update guarantees an existing stamp is never overwritten.
	CompleteCheckOut(ctx context.Context, id uuid.UUID, at time.Time) (domain.Visit, error)

	// List returns visits joined with their visitor and host, filtered per f,
	// ordered by check_in descending (most recent first).
	List(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error)

	// Stats returns the dashboard counters. dayStart/dayEnd bound the
	// calendar day as [dayStart, dayEnd); the inside-now counter is global.
	Stats(ctx context.Context, dayStart, dayEnd time.Time) (domain.DailyStats, error)
}

// pgVisitRepo is the Postgres implementation of VisitRepo.
type pgVisitRepo struct {
	db db
}

// NewVisitRepo constructs a VisitRepo backed by the provided db connection.
func NewVisitRepo(db db) VisitRepo {
	return &pgVisitRepo{db: db}
}

func (r *pgVisitRepo) Create(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	const q = `
		INSERT INTO visits (visitor_id, host_id, purpose, vehicle_no, check_in)
		VALUES (@visitor_id, @host_id, @purpose, @vehicle_no, @check_in)
		RETURNING id, visitor_id, host_id, purpose, vehicle_no, check_in, check_out`

	args := pgx.NamedArgs{
		"visitor_id": visit.VisitorID,
		"host_id":    visit.HostID,
		"purpose":    visit.Purpose,
		"vehicle_no": visit.VehicleNo,
		"check_in":   visit.CheckIn,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVisit(row)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("repo.VisitRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgVisitRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Visit, error) {
	const q = `
		SELECT id, visitor_id, host_id, purpose, vehicle_no, check_in, check_out
		FROM visits
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVisit(row)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("repo.VisitRepo.GetByID: %w", err)
	}
	return result, nil
}

// CompleteCheckOut performs the one-way inside → checked-out transition.
// The check_out IS NULL guard makes the transition happen at most once even
// under concurrent check-out requests.
func (r *pgVisitRepo) CompleteCheckOut(ctx context.Context, id uuid.UUID, at time.Time) (domain.Visit, error) {
	const q = `
		UPDATE visits
		SET check_out = @check_out
		WHERE id = @id AND check_out IS NULL
		RETURNING id, visitor_id, host_id, purpose, vehicle_no, check_in, check_out`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "check_out": at})
	result, err := scanVisit(row)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("repo.VisitRepo.CompleteCheckOut: %w", err)
	}
	return result, nil
}

// List assembles the filtered, joined listing that feeds both the visits page
// and the CSV export.
func (r *pgVisitRepo) List(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error) {
	q := `
		SELECT v.id, v.visitor_id, v.host_id, v.purpose, v.vehicle_no, v.check_in, v.check_out,
		       vr.name, vr.phone, vr.id_proof,
		       h.name, h.department
		FROM visits v
		JOIN visitors vr ON vr.id = v.visitor_id
		JOIN hosts h ON h.id = v.host_id`

	var (
		where []string
		args  = pgx.NamedArgs{}
	)
	switch f.Status {
	case domain.StatusInside:
		where = append(where, "v.check_out IS NULL")
	case domain.StatusCheckedOut:
		where = append(where, "v.check_out IS NOT NULL")
	}
	if f.From != nil {
		where = append(where, "v.check_in >= @from")
		args["from"] = *f.From
	}
	if f.To != nil {
		// f.To is the start of the day after the requested to-date, so the
		// exclusive comparison includes the entire requested day.
		where = append(where, "v.check_in < @to")
		args["to"] = *f.To
	}
	if len(where) > 0 {
		q += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	q += "\n\t\tORDER BY v.check_in DESC"

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.List: %w", err)
	}
	defer rows.Close()

	var visits []domain.VisitDetail
	for rows.Next() {
		d, err := scanVisitDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VisitRepo.List: scan: %w", err)
		}
		visits = append(visits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.List: rows: %w", err)
	}

	return visits, nil
}

// Stats computes all three dashboard counters in a single pass over visits.
func (r *pgVisitRepo) Stats(ctx context.Context, dayStart, dayEnd time.Time) (domain.DailyStats, error) {
	const q = `
		SELECT
			count(*) FILTER (WHERE check_in >= @day_start AND check_in < @day_end),
			count(*) FILTER (WHERE check_out IS NULL),
			count(*) FILTER (WHERE check_out >= @day_start AND check_out < @day_end)
		FROM visits`

	var stats domain.DailyStats
	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"day_start": dayStart, "day_end": dayEnd})
	if err := row.Scan(&stats.TotalToday, &stats.InsideNow, &stats.CheckedOutToday); err != nil {
		return domain.DailyStats{}, fmt.Errorf("repo.VisitRepo.Stats: %w", err)
	}
	return stats, nil
}

// scanVisit maps a single database row into a domain.Visit.
// It handles the UUID and nullable check_out conversions.
func scanVisit(s scanner) (domain.Visit, error) {
	var (
		v         domain.Visit
		id        pgtype.UUID
		visitorID pgtype.UUID
		hostID    pgtype.UUID
		checkOut  pgtype.Timestamptz
	)

	err := s.Scan(&id, &visitorID, &hostID, &v.Purpose, &v.VehicleNo, &v.CheckIn, &checkOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Visit{}, domain.ErrNotFound
		}
		return domain.Visit{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.VisitorID = uuid.UUID(visitorID.Bytes)
	v.HostID = uuid.UUID(hostID.Bytes)
	if checkOut.Valid {
		co := checkOut.Time
		v.CheckOut = &co
	}

	return v, nil
}

// scanVisitDetail maps a joined listing row into a domain.VisitDetail.
func scanVisitDetail(s scanner) (domain.VisitDetail, error) {
	var (
		d         domain.VisitDetail
		id        pgtype.UUID
		visitorID pgtype.UUID
		hostID    pgtype.UUID
		checkOut  pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &visitorID, &hostID, &d.Purpose, &d.VehicleNo, &d.CheckIn, &checkOut,
		&d.VisitorName, &d.VisitorPhone, &d.VisitorIDProof,
		&d.HostName, &d.HostDepartment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VisitDetail{}, domain.ErrNotFound
		}
		return domain.VisitDetail{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.VisitorID = uuid.UUID(visitorID.Bytes)
	d.HostID = uuid.UUID(hostID.Bytes)
	if checkOut.Valid {
		co := checkOut.Time
		d.CheckOut = &co
	}

	return d, nil
}
