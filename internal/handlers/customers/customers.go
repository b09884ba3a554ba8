package customers

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

type customerPayload struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email"`
}

func (p customerPayload) validate() string {
	if p.FirstName == "" || p.LastName == "" {
		return "first_name and last_name are required"
	}
	if p.PhoneNumber == "" {
		return "phone_number is required"
	}
	return ""
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListCustomers(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	httpserver.JSON(w, http.StatusOK, out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	c, err := h.repo.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			httpserver.Error(w, http.StatusNotFound, "customer not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to load customer")
		return
	}
	httpserver.JSON(w, http.StatusOK, c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var p customerPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&p); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}
	c, err := h.repo.CreateCustomer(r.Context(), models.Customer{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to create customer")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	defer r.Body.Close()
	var p customerPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&p); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}
	err = h.repo.UpdateCustomer(r.Context(), models.Customer{
		ID:          id,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
	})
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			httpserver.Error(w, http.StatusNotFound, "customer not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to update customer")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	if err := h.repo.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			httpserver.Error(w, http.StatusNotFound, "customer not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to delete customer")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
