package handler

import (
	"net/http"
	"time"

	"github.com/gatehouse/visitor-log/internal/domain"
)

// dashboardView feeds the dashboard template: today's counters plus the host
// list in name order.
type dashboardView struct {
	Stats domain.DailyStats
	Hosts []domain.Host
}

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.visits.StatsForDay(r.Context(), time.Now())
	if err != nil {
		s.serverError(w, "load daily stats", err)
		return
	}
	hosts, err := s.hosts.List(r.Context())
	if err != nil {
		s.serverError(w, "load hosts", err)
		return
	}
	s.render(w, r, "dashboard", dashboardView{Stats: stats, Hosts: hosts})
}
