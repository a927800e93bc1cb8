package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gatehouse/visitor-log/internal/domain"
)

// VisitorRepo defines the persistence operations for Visitors.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type VisitorRepo interface {
	// Create inserts a new visitor and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error)

	// FindByNamePhone retrieves the visitor matching the exact (name, phone)
	// pair. Returns domain.ErrNotFound when no such visitor exists.
	// If several visitors share the pair, the oldest record wins so repeat
	// check-ins keep reusing the same identity.
	FindByNamePhone(ctx context.Context, name, phone string) (domain.Visitor, error)

	// List returns all visitors ordered by created_at descending.
	List(ctx context.Context) ([]domain.Visitor, error)
}

// pgVisitorRepo is the Postgres implementation of VisitorRepo.
type pgVisitorRepo struct {
	db db
}

// NewVisitorRepo constructs a VisitorRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVisitorRepo(db db) VisitorRepo {
	return &pgVisitorRepo{db: db}
}

func (r *pgVisitorRepo) Create(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	const q = `
		INSERT INTO visitors (name, phone, id_proof)
		VALUES (@name, @phone, @id_proof)
		RETURNING id, name, phone, id_proof, created_at`

	args := pgx.NamedArgs{
		"name":     visitor.Name,
		"phone":    visitor.Phone,
		"id_proof": visitor.IDProof,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVisitor(row)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("repo.VisitorRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgVisitorRepo) FindByNamePhone(ctx context.Context, name, phone string) (domain.Visitor, error) {
	const q = `
		SELECT id, name, phone, id_proof, created_at
		FROM visitors
		WHERE name = @name AND phone = @phone
		ORDER BY created_at ASC
		LIMIT 1`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name, "phone": phone})
	result, err := scanVisitor(row)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("repo.VisitorRepo.FindByNamePhone: %w", err)
	}
	return result, nil
}

// List returns all visitors, most recently created first.
func (r *pgVisitorRepo) List(ctx context.Context) ([]domain.Visitor, error) {
	const q = `
		SELECT id, name, phone, id_proof, created_at
		FROM visitors
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VisitorRepo.List: %w", err)
	}
	defer rows.Close()

	var visitors []domain.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VisitorRepo.List: scan: %w", err)
		}
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitorRepo.List: rows: %w", err)
	}

	return visitors, nil
}

// scanVisitor maps a single database row into a domain.Visitor.
func scanVisitor(s scanner) (domain.Visitor, error) {
	var (
		v  domain.Visitor
		id pgtype.UUID
	)

	err := s.Scan(&id, &v.Name, &v.Phone, &v.IDProof, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Visitor{}, domain.ErrNotFound
		}
		return domain.Visitor{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	return v, nil
}
