package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"crown-status/pkg/audit"
	"crown-status/pkg/auth"
	"crown-status/pkg/model"
)

const stateCookie = "oauth_state"

// AuthHandler serves the login gate: OAuth against the configured
// identity provider with an email allow-list, plus an optional local
// password fallback backed by the account store.
type AuthHandler struct {
	DB         *gorm.DB // nil disables password login
	Provider   *auth.Provider
	Allow      auth.Allowlist
	SessionTTL time.Duration
	Journal    *audit.Journal
}

type passwordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/auth/login", a.handleLogin)
	mux.HandleFunc("/auth/callback", a.handleCallback)
	mux.HandleFunc("/auth/password", a.handlePassword)
	mux.HandleFunc("/auth/register", a.handleRegister)
	mux.HandleFunc("/auth/logout", a.handleLogout)
}

func (a *AuthHandler) ttl() time.Duration {
	if a.SessionTTL > 0 {
		return a.SessionTTL
	}
	return 24 * time.Hour
}

// handleLogin starts the provider flow. Without a configured provider
// there is nothing to redirect to.
func (a *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if a.Provider == nil {
		http.Error(w, "login not configured", http.StatusServiceUnavailable)
		return
	}
	state, err := randomState()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, a.Provider.AuthCodeURL(state), http.StatusFound)
}

func (a *AuthHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	if a.Provider == nil {
		http.Error(w, "login not configured", http.StatusServiceUnavailable)
		return
	}
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}
	token, err := a.Provider.Exchange(r.Context(), code)
	if err != nil {
		log.Printf("oauth exchange failed: %v", err)
		a.Journal.Record(audit.EventLoginFailed, "", "exchange failed")
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}
	email, err := a.Provider.FetchEmail(r.Context(), token)
	if err != nil {
		log.Printf("userinfo lookup failed: %v", err)
		a.Journal.Record(audit.EventLoginFailed, "", "userinfo failed")
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}
	if !a.Allow.Allowed(email) {
		a.Journal.Record(audit.EventDenied, email, "not on allow-list")
		http.Error(w, "account not permitted", http.StatusForbidden)
		return
	}
	session, err := auth.Generate(email, "oauth", a.ttl())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	a.Journal.Record(audit.EventLoginOK, email, "oauth")
	a.setSession(w, session)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *AuthHandler) handlePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.DB == nil {
		http.Error(w, "password login disabled", http.StatusServiceUnavailable)
		return
	}
	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	var user model.User
	if err := a.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		a.Journal.Record(audit.EventLoginFailed, req.Email, "unknown account")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		a.Journal.Record(audit.EventLoginFailed, req.Email, "bad password")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	session, err := auth.Generate(user.Email, "local", a.ttl())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	a.Journal.Record(audit.EventLoginOK, user.Email, "local")
	a.setSession(w, session)
	writeJSON(w, http.StatusOK, map[string]string{"token": session})
}

// handleRegister only allows the first account to be created (admin).
func (a *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.DB == nil {
		http.Error(w, "password login disabled", http.StatusServiceUnavailable)
		return
	}
	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	var count int64
	a.DB.Model(&model.User{}).Count(&count)
	if count > 0 {
		http.Error(w, "registration closed", http.StatusForbidden)
		return
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	user := model.User{Email: req.Email, PasswordHash: string(hash), IsAdmin: true}
	if err := a.DB.Create(&user).Error; err != nil {
		http.Error(w, "failed to create account", http.StatusInternalServerError)
		return
	}
	session, _ := auth.Generate(user.Email, "local", a.ttl())
	a.setSession(w, session)
	writeJSON(w, http.StatusOK, map[string]string{"token": session})
}

func (a *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/auth/login", http.StatusFound)
}

func (a *AuthHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.ttl().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
