package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/service"
)

// visitFormView feeds the check-in form template.
type visitFormView struct {
	Hosts []domain.Host
}

// visitsView feeds the filtered listing template. From and To echo the raw
// query values back into the filter form, valid or not.
type visitsView struct {
	Visits []domain.VisitDetail
	Status string
	From   string
	To     string
}

// NewVisitForm handles GET /visits/new.
func (s *Server) NewVisitForm(w http.ResponseWriter, r *http.Request) {
	hosts, err := s.hosts.List(r.Context())
	if err != nil {
		s.serverError(w, "load hosts", err)
		return
	}
	s.render(w, r, "visit_new", visitFormView{Hosts: hosts})
}

// CreateVisit handles POST /visits/new. On validation failure nothing is
// persisted — the visitor is sent back to the form with an error flash.
func (s *Server) CreateVisit(w http.ResponseWriter, r *http.Request) {
	// A malformed or missing host_id parses to uuid.Nil, which the service
	// rejects as a validation error.
	hostID, _ := uuid.Parse(r.FormValue("host_id"))

	in := service.CheckInInput{
		VisitorName:    strings.TrimSpace(r.FormValue("visitor_name")),
		VisitorPhone:   strings.TrimSpace(r.FormValue("visitor_phone")),
		VisitorIDProof: strings.TrimSpace(r.FormValue("visitor_id")),
		HostID:         hostID,
		Purpose:        strings.TrimSpace(r.FormValue("purpose")),
		VehicleNo:      strings.TrimSpace(r.FormValue("vehicle_no")),
	}

	if _, err := s.visits.CheckIn(r.Context(), in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			setFlash(w, "error", validationMessage(err))
			http.Redirect(w, r, "/visits/new", http.StatusSeeOther)
			return
		}
		s.serverError(w, "check in visitor", err)
		return
	}

	setFlash(w, "success", "Visitor checked in successfully.")
	http.Redirect(w, r, "/visits?status=inside", http.StatusSeeOther)
}

// ListVisits handles GET /visits?status=&from=&to=.
// Malformed from/to dates silently drop that bound rather than failing.
func (s *Server) ListVisits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.NewVisitFilter(q.Get("status"), q.Get("from"), q.Get("to"), time.Local)

	visits, err := s.visits.List(r.Context(), f)
	if err != nil {
		s.serverError(w, "list visits", err)
		return
	}
	s.render(w, r, "visits_list", visitsView{
		Visits: visits,
		Status: string(f.Status),
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
}

// CheckOutVisit handles POST /visits/{id}/checkout.
// Checking out an already-checked-out visit is a no-op reported as an
// informational flash, not an error.
func (s *Server) CheckOutVisit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	_, alreadyOut, err := s.visits.CheckOut(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.serverError(w, "check out visitor", err)
		return
	}

	if alreadyOut {
		setFlash(w, "info", "Already checked out.")
	} else {
		setFlash(w, "success", "Visitor checked out.")
	}
	http.Redirect(w, r, "/visits?status=inside", http.StatusSeeOther)
}
