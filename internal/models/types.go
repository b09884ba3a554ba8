// internal/models/types.go
package models

import (
	"errors"
	"time"
)

// OrderStatus tracks a service order through its lifecycle.
type OrderStatus string

const (
	StatusNew        OrderStatus = "New"
	StatusInProgress OrderStatus = "InProgress"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// AllStatuses returns every order status in its fixed reporting order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusNew, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether an order in this status still needs work.
func (s OrderStatus) Active() bool {
	return s == StatusNew || s == StatusInProgress
}

type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleReceptionist Role = "Receptionist"
	RoleMechanic     Role = "Mechanic"
)

type Customer struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email,omitempty"`
	Vehicles    []Vehicle `json:"vehicles,omitempty"`
}

type Vehicle struct {
	ID                 int64          `json:"id"`
	Make               string         `json:"make"`
	Model              string         `json:"model"`
	VIN                *string        `json:"vin,omitempty"`
	RegistrationNumber string         `json:"registration_number"`
	Year               int            `json:"year"`
	ImageURL           *string        `json:"image_url,omitempty"`
	CustomerID         int64          `json:"customer_id"`
	Customer           *Customer      `json:"customer,omitempty"`
	Orders             []ServiceOrder `json:"orders,omitempty"`
}

// ServiceOrder is a unit of repair work on one vehicle.
// CompletedAt is set iff Status is Completed; repo.UpdateOrderStatus
// maintains that, reporting only reads it.
type ServiceOrder struct {
	ID          int64         `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	Description string        `json:"description"`
	Status      OrderStatus   `json:"status"`
	VehicleID   int64         `json:"vehicle_id"`
	Vehicle     *Vehicle      `json:"vehicle,omitempty"`
	MechanicID  *int64        `json:"mechanic_id,omitempty"`
	Mechanic    *User         `json:"mechanic,omitempty"`
	Tasks       []ServiceTask `json:"tasks,omitempty"`
	Comments    []Comment     `json:"comments,omitempty"`
}

type ServiceTask struct {
	ID             int64      `json:"id"`
	Description    string     `json:"description"`
	LaborCost      float64    `json:"labor_cost"`
	ServiceOrderID int64      `json:"service_order_id"`
	UsedParts      []UsedPart `json:"used_parts,omitempty"`
}

type UsedPart struct {
	ID            int64 `json:"id"`
	Quantity      int   `json:"quantity"`
	PartID        int64 `json:"part_id"`
	Part          *Part `json:"part,omitempty"`
	ServiceTaskID int64 `json:"service_task_id"`
}

type Part struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  *string `json:"category,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}

type Comment struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	ServiceOrderID int64     `json:"service_order_id"`
	AuthorID       *int64    `json:"author_id,omitempty"`
	AuthorName     string    `json:"author_name,omitempty"`
}

// User is a staff account; mechanics are users with RoleMechanic.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type LocalCredential struct {
	UserID       int64
	Username     string
	PasswordHash string
}

type Session struct {
	UserID int64
	Role   Role
	Expiry time.Time
}

// Dashboard aggregates the counters shown on role dashboards. Fields not
// relevant to a given role stay zero.
type Dashboard struct {
	TotalOrders              int     `json:"total_orders"`
	ActiveOrders             int     `json:"active_orders"`
	CompletedOrders          int     `json:"completed_orders"`
	Customers                int     `json:"customers"`
	Vehicles                 int     `json:"vehicles"`
	RevenueThisMonth         float64 `json:"revenue_this_month"`
	AssignedOrders           int     `json:"assigned_orders"`
	CompletedOrdersThisMonth int     `json:"completed_orders_this_month"`
}

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrUserNotFound     = errors.New("user not found")
)
