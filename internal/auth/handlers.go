package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"warsztat/internal/models"
	"warsztat/internal/repo"
)

// POST /auth/login
// Body: { "username": "...", "password": "..." }
func LoginHandler(r repo.Repo, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		username := strings.ToLower(strings.TrimSpace(body.Username))
		if username == "" || body.Password == "" {
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}

		cred, user, err := r.GetLocalCredentialByUsername(req.Context(), username)
		if err != nil {
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}
		if !VerifyPassword(body.Password, cred.PasswordHash) {
			slog.WarnContext(req.Context(), "login bad password", "username", username)
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}

		SetSessionCookie(w, models.Session{
			UserID: user.ID,
			Role:   user.Role,
			Expiry: time.Now().Add(ttl),
		})
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
	}
}

// POST /auth/logout
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		// Best-effort delete server-side session
		if c, err := req.Cookie("session"); err == nil && c.Value != "" {
			DefaultStore.Delete(c.Value)
		}
		ClearSessionCookie(w)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// GET /auth/me
func ProfileHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		sess := ReadSession(req)
		if sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := r.GetUserByID(req.Context(), sess.UserID)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
