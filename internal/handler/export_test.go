package handler_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatehouse/visitor-log/internal/domain"
)

func getExport(t *testing.T, f *fixtures) *httptest.ResponseRecorder {
	t.Helper()
	h := newHTTPHandler(t, f)
	cookie := loginCookie(t, h)

	req := httptest.NewRequest(http.MethodGet, "/export.csv", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestExportCSV_Headers(t *testing.T) {
	rec := getExport(t, newFixtures())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="visits_export.csv"`, rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Header().Get("Content-Length"))
}

func TestExportCSV_EmptyLog_HeaderRowOnly(t *testing.T) {
	rec := getExport(t, newFixtures())

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "empty log should export the header row alone")
	assert.Equal(t, []string{
		"Visit ID", "Visitor", "Phone", "ID Proof",
		"Host", "Department", "Purpose", "Vehicle No",
		"Check In", "Check Out",
	}, records[0])
}

func TestExportCSV_Rows(t *testing.T) {
	f := newFixtures()
	f.export.export = func(_ context.Context) ([]domain.ExportRow, error) {
		return []domain.ExportRow{
			{
				VisitID:     "11111111-2222-3333-4444-555555555555",
				VisitorName: "Asha Verma",
				Phone:       "9876543210",
				IDProof:     "DL-1234",
				HostName:    "Prof. Sharma",
				Department:  "Computer Science",
				Purpose:     "Project meeting",
				VehicleNo:   "KA-01-AB-1234",
				CheckIn:     "2025-06-15 09:30",
				CheckOut:    "2025-06-15 17:45",
			},
			{
				VisitID:     "99999999-8888-7777-6666-555555555555",
				VisitorName: "Ravi Kumar",
				HostName:    "Admin Office",
				Purpose:     "Delivery, urgent", // embedded comma must survive quoting
				CheckIn:     "2025-06-15 11:00",
			},
		}, nil
	}

	rec := getExport(t, f)

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Asha Verma", records[1][1])
	assert.Equal(t, "2025-06-15 17:45", records[1][9])

	assert.Equal(t, "Delivery, urgent", records[2][6])
	// An open visit's check-out cell is empty.
	assert.Equal(t, "", records[2][9])
}

func TestExportCSV_QuotesEmbeddedNewlines(t *testing.T) {
	f := newFixtures()
	f.export.export = func(_ context.Context) ([]domain.ExportRow, error) {
		return []domain.ExportRow{{
			VisitID:     "1",
			VisitorName: "Line\nBreak",
			Purpose:     `He said "hello"`,
		}}, nil
	}

	rec := getExport(t, f)

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Line\nBreak", records[1][1])
	assert.True(t, strings.Contains(records[1][6], `"hello"`))
}
