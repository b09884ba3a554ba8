package repo

import (
	"context"
	"log/slog"
	"time"

	"warsztat/internal/models"
)

// Report selectors. These return fully materialized object graphs so the
// report package can render without further queries.

// dateFilter is appended to order queries; NULL bounds mean unbounded.
// Both bounds are inclusive and filter on the order's creation time.
const dateFilter = ` AND ($2::timestamptz IS NULL OR o.created_at >= $2)
	AND ($3::timestamptz IS NULL OR o.created_at <= $3)`

func (p *pgRepo) CustomerWithOrders(ctx context.Context, id int64, from, to *time.Time) (models.Customer, error) {
	cust, err := p.GetCustomer(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	orders, err := p.queryOrders(ctx,
		" WHERE c.id = $1"+dateFilter+" ORDER BY o.created_at", id, from, to)
	if err != nil {
		slog.ErrorContext(ctx, "CustomerWithOrders failed", "customer_id", id, "err", err)
		return models.Customer{}, err
	}
	if orders, err = p.loadOrderGraph(ctx, orders); err != nil {
		return models.Customer{}, err
	}
	byVehicle := make(map[int64][]models.ServiceOrder)
	for _, o := range orders {
		byVehicle[o.VehicleID] = append(byVehicle[o.VehicleID], o)
	}
	for i := range cust.Vehicles {
		cust.Vehicles[i].Orders = byVehicle[cust.Vehicles[i].ID]
	}
	return cust, nil
}

func (p *pgRepo) VehicleWithOrders(ctx context.Context, id int64, from, to *time.Time) (models.Vehicle, error) {
	veh, err := p.GetVehicle(ctx, id)
	if err != nil {
		return models.Vehicle{}, err
	}
	orders, err := p.queryOrders(ctx,
		" WHERE o.vehicle_id = $1"+dateFilter+" ORDER BY o.created_at", id, from, to)
	if err != nil {
		slog.ErrorContext(ctx, "VehicleWithOrders failed", "vehicle_id", id, "err", err)
		return models.Vehicle{}, err
	}
	if orders, err = p.loadOrderGraph(ctx, orders); err != nil {
		return models.Vehicle{}, err
	}
	veh.Orders = orders
	return veh, nil
}

// OrdersForMonth selects orders created within the calendar month,
// using a half-open [first, first of next month) window.
func (p *pgRepo) OrdersForMonth(ctx context.Context, month time.Month, year int) ([]models.ServiceOrder, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	orders, err := p.queryOrders(ctx,
		" WHERE o.created_at >= $1 AND o.created_at < $2 ORDER BY o.created_at", start, end)
	if err != nil {
		slog.ErrorContext(ctx, "OrdersForMonth failed", "month", int(month), "year", year, "err", err)
		return nil, err
	}
	return p.loadOrderGraph(ctx, orders)
}

// ActiveOrders returns every order still in progress, oldest first.
func (p *pgRepo) ActiveOrders(ctx context.Context) ([]models.ServiceOrder, error) {
	orders, err := p.queryOrders(ctx,
		" WHERE o.status = ANY($1) ORDER BY o.created_at",
		[]string{string(models.StatusNew), string(models.StatusInProgress)})
	if err != nil {
		slog.ErrorContext(ctx, "ActiveOrders failed", "err", err)
		return nil, err
	}
	return p.loadOrderGraph(ctx, orders)
}
