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

// HostRepo defines the persistence operations for Hosts.
// Hosts are create-and-read only; there is no update or delete.
type HostRepo interface {
	// Create inserts a new host and returns the persisted record.
	Create(ctx context.Context, host domain.Host) (domain.Host, error)

	// GetByID retrieves a single host by its UUID primary key.
	// Returns domain.ErrNotFound if no host with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Host, error)

	// List returns all hosts ordered by name ascending.
	List(ctx context.Context) ([]domain.Host, error)
}

// pgHostRepo is the Postgres implementation of HostRepo.
type pgHostRepo struct {
	db db
}

// NewHostRepo constructs a HostRepo backed by the provided db connection.
func NewHostRepo(db db) HostRepo {
	return &pgHostRepo{db: db}
}

func (r *pgHostRepo) Create(ctx context.Context, host domain.Host) (domain.Host, error) {
	const q = `
		INSERT INTO hosts (name, department)
		VALUES (@name, @department)
		RETURNING id, name, department, created_at`

	args := pgx.NamedArgs{
		"name":       host.Name,
		"department": host.Department,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanHost(row)
	if err != nil {
		return domain.Host{}, fmt.Errorf("repo.HostRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgHostRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Host, error) {
	const q = `
		SELECT id, name, department, created_at
		FROM hosts
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanHost(row)
	if err != nil {
		return domain.Host{}, fmt.Errorf("repo.HostRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all hosts in name order, for the dashboard and the
// check-in form's host picker.
func (r *pgHostRepo) List(ctx context.Context) ([]domain.Host, error) {
	const q = `
		SELECT id, name, department, created_at
		FROM hosts
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.HostRepo.List: %w", err)
	}
	defer rows.Close()

	var hosts []domain.Host
	for rows.Next() {
		h, err := scanHost(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HostRepo.List: scan: %w", err)
		}
		hosts = append(hosts, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HostRepo.List: rows: %w", err)
	}

	return hosts, nil
}

// scanHost maps a single database row into a domain.Host.
func scanHost(s scanner) (domain.Host, error) {
	var (
		h  domain.Host
		id pgtype.UUID
	)

	err := s.Scan(&id, &h.Name, &h.Department, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Host{}, domain.ErrNotFound
		}
		return domain.Host{}, err
	}

	h.ID = uuid.UUID(id.Bytes)
	return h, nil
}
