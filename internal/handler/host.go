package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gatehouse/visitor-log/internal/domain"
)

// hostsView feeds the hosts page template.
type hostsView struct {
	Hosts []domain.Host
}

// HostsPage handles GET /hosts.
func (s *Server) HostsPage(w http.ResponseWriter, r *http.Request) {
	hosts, err := s.hosts.List(r.Context())
	if err != nil {
		s.serverError(w, "load hosts", err)
		return
	}
	s.render(w, r, "hosts", hostsView{Hosts: hosts})
}

// CreateHost handles POST /hosts. Department is optional; a missing name is a
// validation failure that creates nothing.
func (s *Server) CreateHost(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	department := strings.TrimSpace(r.FormValue("department"))

	if _, err := s.hosts.Create(r.Context(), name, department); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			setFlash(w, "error", validationMessage(err))
			http.Redirect(w, r, "/hosts", http.StatusSeeOther)
			return
		}
		s.serverError(w, "create host", err)
		return
	}

	setFlash(w, "success", "Host added.")
	http.Redirect(w, r, "/hosts", http.StatusSeeOther)
}
