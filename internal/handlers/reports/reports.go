// Package reports serves the generated PDF documents over HTTP.
package reports

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	httpserver "warsztat/internal/http"
	"warsztat/internal/models"
	"warsztat/internal/report"
)

type Handler struct {
	svc *report.Service
}

func New(svc *report.Service) *Handler { return &Handler{svc: svc} }

// dateRange parses optional ?from= and ?to= query params (2006-01-02).
// The upper bound is pushed to end of day so both bounds are inclusive.
func dateRange(r *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, nil, err
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return from, to, nil
}

func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrCustomerNotFound):
		httpserver.Error(w, http.StatusNotFound, "customer not found")
	case errors.Is(err, models.ErrVehicleNotFound):
		httpserver.Error(w, http.StatusNotFound, "vehicle not found")
	default:
		httpserver.Error(w, http.StatusInternalServerError, "report generation failed")
	}
}

// Customer serves GET /reports/customers/{id}.
func (h *Handler) Customer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	buf, filename, err := h.svc.CustomerReport(r.Context(), id, from, to)
	if err != nil {
		writeReportError(w, err)
		return
	}
	httpserver.PDF(w, filename, buf)
}

// Vehicle serves GET /reports/vehicles/{id}.
func (h *Handler) Vehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	buf, filename, err := h.svc.VehicleReport(r.Context(), id, from, to)
	if err != nil {
		writeReportError(w, err)
		return
	}
	httpserver.PDF(w, filename, buf)
}

// Monthly serves GET /reports/monthly?month=&year=.
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		httpserver.Error(w, http.StatusBadRequest, "month must be 1-12")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		httpserver.Error(w, http.StatusBadRequest, "year out of range")
		return
	}
	buf, filename, err := h.svc.MonthlyReport(r.Context(), time.Month(month), year)
	if err != nil {
		writeReportError(w, err)
		return
	}
	httpserver.PDF(w, filename, buf)
}

// Active serves GET /reports/active.
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.svc.ActiveOrdersReport(r.Context())
	if err != nil {
		writeReportError(w, err)
		return
	}
	httpserver.PDF(w, filename, buf)
}

// EmailActive serves POST /reports/active/email, mailing the open-orders
// report to the configured admin address on demand.
func (h *Handler) EmailActive(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EmailActiveOrdersReport(r.Context()); err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to email report")
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
