// Package domain contains the core data types for the visitor log.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visitor is a person who has visited the site at least once.
// Identity for dedup purposes is the (Name, Phone) pair: repeat check-ins
// with the same pair reuse the existing record. This is best-effort reuse,
// not a uniqueness constraint — distinct visitors may share a name or phone.
type Visitor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	IDProof   string    `json:"id_proof,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
