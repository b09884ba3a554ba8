package parts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpserver "warsztat/internal/http"
	"warsztat/internal/models"
	"warsztat/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(repo repo.Repo) *Handler { return &Handler{repo: repo} }

type partPayload struct {
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	UnitPrice float64 `json:"unit_price"`
}

func (p partPayload) validate() string {
	if p.Name == "" {
		return "name is required"
	}
	if p.UnitPrice < 0 {
		return "unit_price must not be negative"
	}
	return ""
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListParts(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to list parts")
		return
	}
	httpserver.JSON(w, http.StatusOK, out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid part id")
		return
	}
	p, err := h.repo.GetPart(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPartNotFound) {
			httpserver.Error(w, http.StatusNotFound, "part not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to load part")
		return
	}
	httpserver.JSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var p partPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&p); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}
	created, err := h.repo.CreatePart(r.Context(), models.Part{
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.UnitPrice,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to create part")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid part id")
		return
	}
	defer r.Body.Close()
	var p partPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&p); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}
	err = h.repo.UpdatePart(r.Context(), models.Part{
		ID:        id,
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.UnitPrice,
	})
	if err != nil {
		if errors.Is(err, models.ErrPartNotFound) {
			httpserver.Error(w, http.StatusNotFound, "part not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to update part")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete refuses to remove a part still referenced by a service task;
// the database RESTRICT rule surfaces as a 400.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid part id")
		return
	}
	if err := h.repo.DeletePart(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPartNotFound) {
			httpserver.Error(w, http.StatusNotFound, "part not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to delete part")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
