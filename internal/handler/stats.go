package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// StatsToday handles GET /api/stats/today.
// Response body: {"total_today": n, "inside_now": n, "checked_out_today": n}.
func (s *Server) StatsToday(w http.ResponseWriter, r *http.Request) {
	stats, err := s.visits.StatsForDay(r.Context(), time.Now())
	if err != nil {
		s.serverError(w, "load daily stats", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
