// Package handler implements the HTTP layer of the visitor log: server-rendered
// HTML pages, the JSON stats endpoint, and the CSV export. All handlers are
// methods on Server, split into route-specific files but sharing one struct so
// they can access the same dependencies.
package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/middleware"
	"github.com/gatehouse/visitor-log/internal/service"
	"github.com/gatehouse/visitor-log/internal/web"
)

// VisitServicer defines the visit operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type VisitServicer interface {
	CheckIn(ctx context.Context, in service.CheckInInput) (domain.Visit, error)
	CheckOut(ctx context.Context, id uuid.UUID) (visit domain.Visit, alreadyOut bool, err error)
	List(ctx context.Context, f domain.VisitFilter) ([]domain.VisitDetail, error)
	StatsForDay(ctx context.Context, day time.Time) (domain.DailyStats, error)
}

// VisitorServicer defines the visitor operations the handlers depend on.
type VisitorServicer interface {
	List(ctx context.Context) ([]domain.Visitor, error)
}

// HostServicer defines the host operations the handlers depend on.
type HostServicer interface {
	Create(ctx context.Context, name, department string) (domain.Host, error)
	List(ctx context.Context) ([]domain.Host, error)
}

// ExportServicer defines the export operation the CSV handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handler dependencies: the services, the parsed templates,
// the session authenticator, and the admin credentials.
type Server struct {
	visits   VisitServicer
	visitors VisitorServicer
	hosts    HostServicer
	export   ExportServicer
	tmpl     *web.Templates
	sessions *middleware.SessionAuth
	creds    Credentials
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	visits VisitServicer,
	visitors VisitorServicer,
	hosts HostServicer,
	export ExportServicer,
	tmpl *web.Templates,
	sessions *middleware.SessionAuth,
	creds Credentials,
) *Server {
	return &Server{
		visits:   visits,
		visitors: visitors,
		hosts:    hosts,
		export:   export,
		tmpl:     tmpl,
		sessions: sessions,
		creds:    creds,
	}
}

// Routes assembles the full route table. The session gate wraps everything
// except login, logout, and the health check; CORS applies to /api only.
func (s *Server) Routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.Healthz)
	r.Get("/login", s.LoginForm)
	r.Post("/login", s.Login)
	r.Get("/logout", s.Logout)

	r.Group(func(r chi.Router) {
		r.Use(s.sessions.Require)

		r.Get("/", s.Dashboard)
		r.Get("/visits/new", s.NewVisitForm)
		r.Post("/visits/new", s.CreateVisit)
		r.Get("/visits", s.ListVisits)
		r.Post("/visits/{id}/checkout", s.CheckOutVisit)
		r.Get("/hosts", s.HostsPage)
		r.Post("/hosts", s.CreateHost)
		r.Get("/visitors", s.VisitorsPage)
		r.Get("/export.csv", s.ExportCSV)

		r.Route("/api", func(api chi.Router) {
			api.Use(middleware.NewCORSHandler(corsOrigins))
			api.Get("/stats/today", s.StatsToday)
		})
	})

	return r
}

// page is the data envelope every template receives.
type page struct {
	LoggedIn bool
	Flash    *Flash
	Data     any
}

// render executes the named page template into a buffer first, so a template
// error produces a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	_, loggedIn := s.sessions.User(r)
	p := page{
		LoggedIn: loggedIn,
		Flash:    popFlash(w, r),
		Data:     data,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Render(&buf, name, p); err != nil {
		slog.Error("render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
