package dashboard

import (
	"net/http"

	"warsztat/internal/auth"
	"warsztat/internal/clock"
	httpserver "warsztat/internal/http"
	"warsztat/internal/models"
	"warsztat/internal/repo"
)

type Handler struct {
	repo  repo.Repo
	clock clock.Clock
}

func New(repo repo.Repo, clk clock.Clock) *Handler {
	return &Handler{repo: repo, clock: clk}
}

// Get serves GET /dashboard: each role sees its own set of counters.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok || sess == nil {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var (
		d   models.Dashboard
		err error
	)
	switch sess.Role {
	case models.RoleAdmin:
		d, err = h.repo.AdminDashboard(r.Context(), h.clock.Now())
	case models.RoleReceptionist:
		d, err = h.repo.ReceptionistDashboard(r.Context())
	case models.RoleMechanic:
		d, err = h.repo.MechanicDashboard(r.Context(), sess.UserID, h.clock.Now())
	default:
		httpserver.Error(w, http.StatusForbidden, "forbidden")
		return
	}
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	httpserver.JSON(w, http.StatusOK, d)
}
