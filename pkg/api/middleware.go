package api

import (
	"net/http"
	"strings"

	"crown-status/pkg/auth"
)

const sessionCookie = "crown_session"

// sessionToken extracts the session from the cookie or, for API
// clients, from a bearer header.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func hasValidSession(r *http.Request) bool {
	tok := sessionToken(r)
	if tok == "" {
		return false
	}
	_, err := auth.Parse(tok)
	return err == nil
}

// RequireSession gates a handler behind the login. API paths answer
// 401; page paths bounce to the login flow.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasValidSession(r) {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	})
}
