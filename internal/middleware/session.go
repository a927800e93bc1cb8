package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionCookie is the name of the cookie carrying the signed session token.
const sessionCookie = "vlog_session"

// SessionAuth issues and verifies the signed session cookie that gates every
// route behind the login. The session is an HS256 JWT carrying the admin
// username as subject — an explicit per-request object, not process-wide state.
type SessionAuth struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionAuth constructs a SessionAuth signing with secret.
// ttl bounds how long an issued session stays valid.
func NewSessionAuth(secret string, ttl time.Duration) *SessionAuth {
	return &SessionAuth{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for user and sets it as an HttpOnly cookie.
func (a *SessionAuth) Issue(w http.ResponseWriter, user string) error {
	now := time.Now()
	exp := now.Add(a.ttl)
	claims := jwt.MapClaims{
		"sub": user,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie immediately.
func (a *SessionAuth) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// User returns the username carried by a valid session cookie, or ok=false
// when the cookie is missing, expired, or fails signature verification.
func (a *SessionAuth) User(r *http.Request) (user string, ok bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}

	tok, err := jwt.Parse(c.Value, func(t *jwt.Token) (any, error) {
		// Only HMAC is ever used to sign sessions; reject anything else.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", false
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	return sub, sub != ""
}

// Require rejects requests that lack a valid session. Browsers are redirected
// to the login page; /api callers get a 401 JSON body instead of HTML.
func (a *SessionAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.User(r); !ok {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"login required"}`))
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
