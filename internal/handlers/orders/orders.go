package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

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

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst); err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// List handles GET /orders with an optional ?status= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *models.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.OrderStatus(raw)
		if !s.Valid() {
			httpserver.Error(w, http.StatusBadRequest, "unknown order status")
			return
		}
		status = &s
	}
	out, err := h.repo.ListOrders(r.Context(), status)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	httpserver.JSON(w, http.StatusOK, out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	o, err := h.repo.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			httpserver.Error(w, http.StatusNotFound, "order not found")
			return
		}
		httpserver.Error(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	httpserver.JSON(w, http.StatusOK, o)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Description string `json:"description"`
		VehicleID   int64  `json:"vehicle_id"`
		MechanicID  *int64 `json:"mechanic_id"`
	}
	if !decode(w, r, &p) {
		return
	}
	if p.VehicleID <= 0 {
		httpserver.Error(w, http.StatusBadRequest, "vehicle_id is required")
		return
	}
	o, err := h.repo.CreateOrder(r.Context(), models.ServiceOrder{
		Description: p.Description,
		VehicleID:   p.VehicleID,
		MechanicID:  p.MechanicID,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to create order")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, o)
}

// UpdateStatus handles PATCH /orders/{id}/status. Moving to Completed
// stamps the completion time; moving anywhere else clears it.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var p struct {
		Status models.OrderStatus `json:"status"`
	}
	if !decode(w, r, &p) {
		return
	}
	if !p.Status.Valid() {
		httpserver.Error(w, http.StatusBadRequest, "unknown order status")
		return
	}
	o, err := h.repo.UpdateOrderStatus(r.Context(), id, p.Status, h.clock.Now())
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			httpserver.Error(w, http.StatusNotFound, "order not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to update order status")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, o)
}

// AssignMechanic handles PATCH /orders/{id}/mechanic; a null mechanic_id
// unassigns the order.
func (h *Handler) AssignMechanic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var p struct {
		MechanicID *int64 `json:"mechanic_id"`
	}
	if !decode(w, r, &p) {
		return
	}
	if err := h.repo.AssignMechanic(r.Context(), id, p.MechanicID); err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			httpserver.Error(w, http.StatusNotFound, "order not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to assign mechanic")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "assigned"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	if err := h.repo.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			httpserver.Error(w, http.StatusNotFound, "order not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to delete order")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------- Tasks and used parts ----------------

func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	orderID, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var p struct {
		Description string  `json:"description"`
		LaborCost   float64 `json:"labor_cost"`
	}
	if !decode(w, r, &p) {
		return
	}
	if p.Description == "" {
		httpserver.Error(w, http.StatusBadRequest, "description is required")
		return
	}
	if p.LaborCost < 0 {
		httpserver.Error(w, http.StatusBadRequest, "labor_cost must not be negative")
		return
	}
	t, err := h.repo.AddTask(r.Context(), models.ServiceTask{
		Description:    p.Description,
		LaborCost:      p.LaborCost,
		ServiceOrderID: orderID,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to add task")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, t)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := idParam(r, "taskID")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid task id")
		return
	}
	if err := h.repo.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			httpserver.Error(w, http.StatusNotFound, "task not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to delete task")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AddUsedPart(w http.ResponseWriter, r *http.Request) {
	taskID, err := idParam(r, "taskID")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var p struct {
		PartID   int64 `json:"part_id"`
		Quantity int   `json:"quantity"`
	}
	if !decode(w, r, &p) {
		return
	}
	if p.PartID <= 0 {
		httpserver.Error(w, http.StatusBadRequest, "part_id is required")
		return
	}
	if p.Quantity <= 0 {
		httpserver.Error(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	up, err := h.repo.AddUsedPart(r.Context(), models.UsedPart{
		PartID:        p.PartID,
		Quantity:      p.Quantity,
		ServiceTaskID: taskID,
	})
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to add used part")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, up)
}

func (h *Handler) DeleteUsedPart(w http.ResponseWriter, r *http.Request) {
	usedPartID, err := idParam(r, "usedPartID")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid used part id")
		return
	}
	if err := h.repo.DeleteUsedPart(r.Context(), usedPartID); err != nil {
		if errors.Is(err, models.ErrPartNotFound) {
			httpserver.Error(w, http.StatusNotFound, "used part not found")
			return
		}
		status, msg := httpserver.PGErrorMessage(err, "failed to remove used part")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------- Comments ----------------

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	orderID, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	out, err := h.repo.ListComments(r.Context(), orderID)
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to list comments")
		return
	}
	httpserver.JSON(w, http.StatusOK, out)
}

// AddComment records a note on the order, attributed to the logged-in user.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	orderID, err := idParam(r, "id")
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var p struct {
		Content string `json:"content"`
	}
	if !decode(w, r, &p) {
		return
	}
	if p.Content == "" {
		httpserver.Error(w, http.StatusBadRequest, "content is required")
		return
	}
	c := models.Comment{Content: p.Content, ServiceOrderID: orderID}
	if u, ok := auth.UserFromContext(r.Context()); ok {
		c.AuthorID = &u.ID
	}
	created, err := h.repo.AddComment(r.Context(), c)
	if err != nil {
		status, msg := httpserver.PGErrorMessage(err, "failed to add comment")
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

// Mechanics handles GET /orders/mechanics, the assignment dropdown source.
func (h *Handler) Mechanics(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListMechanics(r.Context())
	if err != nil {
		httpserver.Error(w, http.StatusInternalServerError, "failed to list mechanics")
		return
	}
	httpserver.JSON(w, http.StatusOK, out)
}
