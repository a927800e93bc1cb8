package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single admin credential pair that gates the site.
// When PassHash is set (a bcrypt hash), it takes precedence over the
// plaintext Pass; the plaintext path exists for the dev defaults.
type Credentials struct {
	User     string
	Pass     string
	PassHash string
}

// Match reports whether the submitted pair matches the configured credential.
// Comparisons are constant-time so a probe can't learn the username length.
func (c Credentials) Match(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1

	var passOK bool
	if c.PassHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PassHash), []byte(pass)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(c.Pass)) == 1
	}
	return userOK && passOK
}

// LoginForm handles GET /login.
func (s *Server) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.User(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, r, "login", nil)
}

// Login handles POST /login. A failed attempt redirects back to the form with
// an error flash; a successful one issues the session cookie.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.FormValue("username"))
	pass := strings.TrimSpace(r.FormValue("password"))

	if !s.creds.Match(user, pass) {
		setFlash(w, "error", "Invalid credentials.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := s.sessions.Issue(w, user); err != nil {
		s.serverError(w, "issue session", err)
		return
	}
	setFlash(w, "success", "Logged in successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout. It clears the session whether or not one exists.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	setFlash(w, "info", "Logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
