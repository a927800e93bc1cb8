package handler

import (
	"net/http"

	"github.com/gatehouse/visitor-log/internal/domain"
)

// visitorsView feeds the visitors page template.
type visitorsView struct {
	Visitors []domain.Visitor
}

// VisitorsPage handles GET /visitors, most recently created first.
func (s *Server) VisitorsPage(w http.ResponseWriter, r *http.Request) {
	visitors, err := s.visitors.List(r.Context())
	if err != nil {
		s.serverError(w, "load visitors", err)
		return
	}
	s.render(w, r, "visitors", visitorsView{Visitors: visitors})
}
