package domain

import (
	"time"

	"github.com/google/uuid"
)

// Host is a staff member or office that can receive visitors.
// Hosts are never updated or deleted — deletion would orphan visit
// foreign keys.
type Host struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
