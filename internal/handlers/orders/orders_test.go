package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"warsztat/internal/clock"
	"warsztat/internal/models"
	"warsztat/internal/repo"
)

var handlerNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// stubRepo records the status transition it was asked to perform.
type stubRepo struct {
	repo.Repo
	gotStatus models.OrderStatus
	gotNow    time.Time
	statusErr error
}

func (s *stubRepo) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus, now time.Time) (models.ServiceOrder, error) {
	s.gotStatus = status
	s.gotNow = now
	if s.statusErr != nil {
		return models.ServiceOrder{}, s.statusErr
	}
	return models.ServiceOrder{ID: id, Status: status}, nil
}

func (s *stubRepo) ListOrders(ctx context.Context, status *models.OrderStatus) ([]models.ServiceOrder, error) {
	return nil, nil
}

func newRouter(r repo.Repo) *chi.Mux {
	h := New(r, clock.Fixed(handlerNow))
	mux := chi.NewRouter()
	mux.Get("/orders", h.List)
	mux.Patch("/orders/{id}/status", h.UpdateStatus)
	return mux
}

func TestUpdateStatus_PassesClockTime(t *testing.T) {
	stub := &stubRepo{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/5/status",
		strings.NewReader(`{"status":"Completed"}`))

	newRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusCompleted, stub.gotStatus)
	assert.Equal(t, handlerNow, stub.gotNow)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	stub := &stubRepo{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/5/status",
		strings.NewReader(`{"status":"Archived"}`))

	newRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown order status")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	stub := &stubRepo{statusErr: models.ErrOrderNotFound}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/99/status",
		strings.NewReader(`{"status":"Cancelled"}`))

	newRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders?status=Bogus", nil)

	newRouter(&stubRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
