package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/handler"
	"github.com/gatehouse/visitor-log/internal/middleware"
	"github.com/gatehouse/visitor-log/internal/service"
	"github.com/gatehouse/visitor-log/internal/web"
)

// Test doubles for the servicer interfaces the handlers depend on.
// Set only the method fields your test needs.

type mockVisitServicer struct {
	checkIn     func(ctx context.Context, in service.CheckInInput) (domain.Visit, error)
	checkOut    func(ctx context.Context, id uuid.UUID) (domain.Visit, bool, error)
	list        func(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error)
	statsForDay func(ctx context.Context, day time.Time) (domain.DailyStats, error)
}

func (m *mockVisitServicer) CheckIn(ctx context.Context, in service.CheckInInput) (domain.Visit, error) {
	return m.checkIn(ctx, in)
}
func (m *mockVisitServicer) CheckOut(ctx context.Context, id uuid.UUID) (domain.Visit, bool, error) {
	return m.checkOut(ctx, id)
}
func (m *mockVisitServicer) List(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error) {
	return m.list(ctx, f)
}
func (m *mockVisitServicer) StatsForDay(ctx context.Context, day time.Time) (domain.DailyStats, error) {
	return m.statsForDay(ctx, day)
}

type mockVisitorServicer struct {
	list func(ctx context.Context) ([]domain.Visitor, error)
}

func (m *mockVisitorServicer) List(ctx context.Context) ([]domain.Visitor, error) {
	return m.list(ctx)
}

type mockHostServicer struct {
	create func(ctx context.Context, name, department string) (domain.Host, error)
	list   func(ctx context.Context) ([]domain.Host, error)
}

func (m *mockHostServicer) Create(ctx context.Context, name, department string) (domain.Host, error) {
	return m.create(ctx, name, department)
}
func (m *mockHostServicer) List(ctx context.Context) ([]domain.Host, error) {
	return m.list(ctx)
}

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.VisitServicer   = (*mockVisitServicer)(nil)
	_ handler.VisitorServicer = (*mockVisitorServicer)(nil)
	_ handler.HostServicer    = (*mockHostServicer)(nil)
	_ handler.ExportServicer  = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const (
	testUser = "admin"
	testPass = "admin123"
)

// fixtures bundles the mocks behind a test handler so individual tests can
// override just the calls they exercise.
type fixtures struct {
	visits   *mockVisitServicer
	visitors *mockVisitorServicer
	hosts    *mockHostServicer
	export   *mockExportServicer
}

// newFixtures returns mocks with benign empty-list defaults so page renders
// that touch several services don't need every field set.
func newFixtures() *fixtures {
	return &fixtures{
		visits: &mockVisitServicer{
			list: func(_ context.Context, _ domain.VisitFilter) ([]domain.VisitDetail, error) {
				return []domain.VisitDetail{}, nil
			},
			statsForDay: func(_ context.Context, _ time.Time) (domain.DailyStats, error) {
				return domain.DailyStats{}, nil
			},
		},
		visitors: &mockVisitorServicer{
			list: func(_ context.Context) ([]domain.Visitor, error) { return []domain.Visitor{}, nil },
		},
		hosts: &mockHostServicer{
			list: func(_ context.Context) ([]domain.Host, error) { return []domain.Host{}, nil },
		},
		export: &mockExportServicer{
			export: func(_ context.Context) ([]domain.ExportRow, error) { return []domain.ExportRow{}, nil },
		},
	}
}

// newHTTPHandler wires a Server with the given mocks into the full route table,
// session gate included. This mirrors exactly how main.go wires it in production.
func newHTTPHandler(t *testing.T, f *fixtures) http.Handler {
	t.Helper()

	tmpl, err := web.New()
	require.NoError(t, err, "parse templates")

	sessions := middleware.NewSessionAuth("test-secret", time.Hour)
	creds := handler.Credentials{User: testUser, Pass: testPass}

	srv := handler.NewServer(f.visits, f.visitors, f.hosts, f.export, tmpl, sessions, creds)
	return srv.Routes(nil)
}

// loginCookie logs in through POST /login and returns the session cookie.
// Attach it to requests that must pass the session gate.
func loginCookie(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {testUser}, "password": {testPass}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code, "login should succeed")
	for _, c := range rec.Result().Cookies() {
		if c.Name == "vlog_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

// flashFrom returns the flash cookie set on the response, split into level and
// message, or empty strings when no flash was set.
func flashFrom(t *testing.T, rec *httptest.ResponseRecorder) (level, message string) {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "vlog_flash" && c.Value != "" {
			raw, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			level, message, _ = strings.Cut(raw, "|")
			return level, message
		}
	}
	return "", ""
}
