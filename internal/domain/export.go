package domain

import "time"

// exportTimeLayout renders timestamps at minute precision with no timezone
// marker — local naive time, as the site records it.
const exportTimeLayout = "2006-01-02 15:04"

// ExportRow is a single row in the CSV export: one visit joined with its
// visitor and host, all fields pre-formatted as strings. Missing optional
// fields and an absent check-out render as empty strings.
type ExportRow struct {
	VisitID     string
	VisitorName string
	Phone       string
	IDProof     string
	HostName    string
	Department  string
	Purpose     string
	VehicleNo   string
	CheckIn     string
	CheckOut    string
}

// NewExportRow flattens a VisitDetail into an ExportRow.
func NewExportRow(v VisitDetail) ExportRow {
	return ExportRow{
		VisitID:     v.ID.String(),
		VisitorName: v.VisitorName,
		Phone:       v.VisitorPhone,
		IDProof:     v.VisitorIDProof,
		HostName:    v.HostName,
		Department:  v.HostDepartment,
		Purpose:     v.Purpose,
		VehicleNo:   v.VehicleNo,
		CheckIn:     v.CheckIn.Format(exportTimeLayout),
		CheckOut:    formatOptionalTime(v.CheckOut),
	}
}

// formatOptionalTime renders t at minute precision, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportTimeLayout)
}
