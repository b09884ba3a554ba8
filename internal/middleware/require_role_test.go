package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/auth"
	"warsztat/internal/models"
)

func roleRequest(role models.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := &models.Session{UserID: 1, Role: role, Expiry: time.Now().Add(time.Hour)}
	return req.WithContext(auth.WithSession(req.Context(), sess))
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	next, called := okHandler()
	h := RequireRole(models.RoleAdmin, models.RoleReceptionist)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, roleRequest(models.RoleReceptionist))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireRole_ForbidsOtherRole(t *testing.T) {
	next, called := okHandler()
	h := RequireRole(models.RoleAdmin, models.RoleReceptionist)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, roleRequest(models.RoleMechanic))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestRequireRole_NoSessionIsUnauthorized(t *testing.T) {
	next, _ := okHandler()
	h := RequireRole(models.RoleAdmin)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A mechanic is not a lesser admin: roles do not stack.
func TestRequireRole_NoHierarchy(t *testing.T) {
	next, _ := okHandler()
	h := RequireRole(models.RoleMechanic)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, roleRequest(models.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
