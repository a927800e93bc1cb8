package handler

import (
	"net/http"
	"net/url"
	"strings"
)

// flashCookie carries a one-shot message across the redirect that follows
// every mutation, in the post/redirect/get style. It is read and cleared on
// the next page render.
const flashCookie = "vlog_flash"

// Flash is a one-shot user-facing message. Level is one of
// "success", "error", or "info" and selects the styling.
type Flash struct {
	Level   string
	Message string
}

// setFlash stores a flash message for the next rendered page.
func setFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
