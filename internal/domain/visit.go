package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one visitor's single time-boxed presence on site to see one host.
// CheckOut is nil while the visitor is still inside; it is stamped exactly
// once by the check-out operation and never overwritten.
type Visit struct {
	ID        uuid.UUID  `json:"id"`
	VisitorID uuid.UUID  `json:"visitor_id"`
	HostID    uuid.UUID  `json:"host_id"`
	Purpose   string     `json:"purpose"`
	VehicleNo string     `json:"vehicle_no,omitempty"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
}

// Inside reports whether the visitor is still on site.
func (v Visit) Inside() bool {
	return v.CheckOut == nil
}

// VisitDetail is a Visit joined with the visitor and host it references.
// One query produces it; both the listing pages and the CSV export consume it.
type VisitDetail struct {
	Visit

	VisitorName    string `json:"visitor_name"`
	VisitorPhone   string `json:"visitor_phone,omitempty"`
	VisitorIDProof string `json:"visitor_id_proof,omitempty"`

	HostName       string `json:"host_name"`
	HostDepartment string `json:"host_department,omitempty"`
}
