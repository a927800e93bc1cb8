package handler

import (
	"log/slog"
	"net/http"
	"strings"
)

// serverError logs err and sends a plain 500. Unexpected failures never leak
// internals to the page.
func (s *Server) serverError(w http.ResponseWriter, what string, err error) {
	slog.Error(what, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error.
// e.g. "service.VisitService.CheckIn: validation error: purpose is required"
// → "purpose is required"
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
