package vehicles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	httpserver "warsztat/internal/http"
	"warsztat/internal/models"
	"warsztat/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(repo repo.Repo) *Handler { return &Handler{repo: repo} }

type vehiclePayload struct {
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	VIN                *string `json:"vin"`
	RegistrationNumber string  `json:"registration_number"`
	Year               int     `json:"year"`
	ImageURL           *string `json:"image_url"`
	CustomerID         int64   `json:"customer_id"`
}

func (p vehiclePayload) validate() string {
	if p.Make == "" || p.Model == "" {
		return "make and model are required"
	}
	if p.RegistrationNumber == "" {
		return "registration_number is required"
	}
	if p.Year < 1900 || p.Year > time.Now().Year()+1 {
		return "year out of range"
	}
	if p.VIN != nil && len(*p.VIN) != 17 {
		return "vin must be 17 characters"
	}
	if p.CustomerID <= 0 {
		return "customer_id is required"
	}
	return ""
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListVehicles(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to list vehicles")
		return
	}
	httpserver.JSON(w, http.StatusOK, out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	v, err := h.repo.GetVehicle(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrVehicleNotFound) {
			httpserver.Error(w, http.StatusNotFound, "vehicle not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to load vehicle")
		return
	}
	httpserver.JSON(w, http.StatusOK, v)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var p vehiclePayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&p); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}
	v, err := h.repo.CreateVehicle(r.Context(), models.Vehicle{
		Make:               p.Make,
		Model:              p.Model,
		VIN:                p.VIN,
		RegistrationNumber: p.RegistrationNumber,
		Year:               p.Year,
		ImageURL:           p.ImageURL,
		CustomerID:         p.CustomerID,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to create vehicle")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, v)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	defer r.Body.Close()
	var p vehiclePayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&p); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := p.validate(); msg != "" {
		httpserver.Error(w, http.StatusBadRequest, msg)
		return
	}
	err = h.repo.UpdateVehicle(r.Context(), models.Vehicle{
		ID:                 id,
		Make:               p.Make,
		Model:              p.Model,
		VIN:                p.VIN,
		RegistrationNumber: p.RegistrationNumber,
		Year:               p.Year,
		ImageURL:           p.ImageURL,
		CustomerID:         p.CustomerID,
	})
	if err != nil {
		if errors.Is(err, models.ErrVehicleNotFound) {
			httpserver.Error(w, http.StatusNotFound, "vehicle not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to update vehicle")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := h.repo.DeleteVehicle(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrVehicleNotFound) {
			httpserver.Error(w, http.StatusNotFound, "vehicle not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to delete vehicle")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
