// internal/repo/repo.go
package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"warsztat/internal/models"
)

// Repo defines the methods the rest of the app uses.
type Repo interface {
	// Customers
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)
	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, c models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	// Vehicles
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v models.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error

	// Service orders
	ListOrders(ctx context.Context, status *models.OrderStatus) ([]models.ServiceOrder, error)
	GetOrder(ctx context.Context, id int64) (models.ServiceOrder, error)
	CreateOrder(ctx context.Context, o models.ServiceOrder) (models.ServiceOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus, now time.Time) (models.ServiceOrder, error)
	AssignMechanic(ctx context.Context, orderID int64, mechanicID *int64) error
	DeleteOrder(ctx context.Context, id int64) error

	// Tasks and used parts
	AddTask(ctx context.Context, t models.ServiceTask) (models.ServiceTask, error)
	DeleteTask(ctx context.Context, id int64) error
	AddUsedPart(ctx context.Context, up models.UsedPart) (models.UsedPart, error)
	DeleteUsedPart(ctx context.Context, id int64) error

	// Parts catalog
	ListParts(ctx context.Context) ([]models.Part, error)
	GetPart(ctx context.Context, id int64) (models.Part, error)
	CreatePart(ctx context.Context, p models.Part) (models.Part, error)
	UpdatePart(ctx context.Context, p models.Part) error
	DeletePart(ctx context.Context, id int64) error

	// Comments
	AddComment(ctx context.Context, c models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, orderID int64) ([]models.Comment, error)

	// Users
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetLocalCredentialByUsername(ctx context.Context, username string) (models.LocalCredential, models.User, error)
	ListMechanics(ctx context.Context) ([]models.User, error)

	// Report selectors: orders come back with tasks, used parts, catalog
	// parts, vehicle, customer and mechanic fully materialized.
	CustomerWithOrders(ctx context.Context, id int64, from, to *time.Time) (models.Customer, error)
	VehicleWithOrders(ctx context.Context, id int64, from, to *time.Time) (models.Vehicle, error)
	OrdersForMonth(ctx context.Context, month time.Month, year int) ([]models.ServiceOrder, error)
	ActiveOrders(ctx context.Context) ([]models.ServiceOrder, error)

	// Dashboards
	AdminDashboard(ctx context.Context, now time.Time) (models.Dashboard, error)
	ReceptionistDashboard(ctx context.Context) (models.Dashboard, error)
	MechanicDashboard(ctx context.Context, mechanicID int64, now time.Time) (models.Dashboard, error)
}

// pgRepo implements Repo over a pgx pool with hand-written SQL.
type pgRepo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) Repo { return &pgRepo{pool: pool} }
