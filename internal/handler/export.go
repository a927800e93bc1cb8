package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gatehouse/visitor-log/internal/domain"
)

// csvHeaders defines the column names written as the first row of the export.
// The order is fixed; an empty log exports as this row alone.
var csvHeaders = []string{
	"Visit ID", "Visitor", "Phone", "ID Proof",
	"Host", "Department", "Purpose", "Vehicle No",
	"Check In", "Check Out",
}

// ExportCSV handles GET /export.csv, serving the visit log as an attachment
// named visits_export.csv. encoding/csv applies standard quoting, so embedded
// commas, quotes, and newlines in text fields are escaped correctly.
func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.serverError(w, "export visits", err)
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer writes never fail; cw.Error() would surface them anyway.
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(exportRowRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="visits_export.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// exportRowRecord flattens an ExportRow into the fixed CSV column order.
func exportRowRecord(r domain.ExportRow) []string {
	return []string{
		r.VisitID,
		r.VisitorName,
		r.Phone,
		r.IDProof,
		r.HostName,
		r.Department,
		r.Purpose,
		r.VehicleNo,
		r.CheckIn,
		r.CheckOut,
	}
}
