package repo

import (
	"context"
	"log/slog"
	"time"

	"warsztat/internal/models"
	"warsztat/internal/pricing"
)

func (p *pgRepo) countRow(ctx context.Context, sql string, args ...any) (int, error) {
	var n int
	err := p.pool.QueryRow(ctx, sql, args...).Scan(&n)
	return n, err
}

func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// AdminDashboard aggregates workshop-wide counters plus this month's
// revenue from completed orders.
func (p *pgRepo) AdminDashboard(ctx context.Context, now time.Time) (models.Dashboard, error) {
	var d models.Dashboard
	var err error
	if d.TotalOrders, err = p.countRow(ctx, `SELECT count(*) FROM service_orders`); err != nil {
		slog.ErrorContext(ctx, "AdminDashboard failed", "err", err)
		return models.Dashboard{}, err
	}
	if d.ActiveOrders, err = p.countRow(ctx,
		`SELECT count(*) FROM service_orders WHERE status = ANY($1)`,
		[]string{string(models.StatusNew), string(models.StatusInProgress)}); err != nil {
		return models.Dashboard{}, err
	}
	if d.CompletedOrders, err = p.countRow(ctx,
		`SELECT count(*) FROM service_orders WHERE status = $1`, models.StatusCompleted); err != nil {
		return models.Dashboard{}, err
	}
	if d.Customers, err = p.countRow(ctx, `SELECT count(*) FROM customers`); err != nil {
		return models.Dashboard{}, err
	}
	if d.Vehicles, err = p.countRow(ctx, `SELECT count(*) FROM vehicles`); err != nil {
		return models.Dashboard{}, err
	}

	start, end := monthWindow(now)
	completed, err := p.queryOrders(ctx,
		" WHERE o.status = $1 AND o.completed_at >= $2 AND o.completed_at < $3",
		models.StatusCompleted, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "AdminDashboard revenue query failed", "err", err)
		return models.Dashboard{}, err
	}
	if completed, err = p.loadOrderGraph(ctx, completed); err != nil {
		return models.Dashboard{}, err
	}
	d.RevenueThisMonth = pricing.OrdersTotal(completed)
	return d, nil
}

func (p *pgRepo) ReceptionistDashboard(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard
	var err error
	if d.Customers, err = p.countRow(ctx, `SELECT count(*) FROM customers`); err != nil {
		slog.ErrorContext(ctx, "ReceptionistDashboard failed", "err", err)
		return models.Dashboard{}, err
	}
	if d.Vehicles, err = p.countRow(ctx, `SELECT count(*) FROM vehicles`); err != nil {
		return models.Dashboard{}, err
	}
	if d.ActiveOrders, err = p.countRow(ctx,
		`SELECT count(*) FROM service_orders WHERE status = ANY($1)`,
		[]string{string(models.StatusNew), string(models.StatusInProgress)}); err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}

func (p *pgRepo) MechanicDashboard(ctx context.Context, mechanicID int64, now time.Time) (models.Dashboard, error) {
	var d models.Dashboard
	var err error
	if d.AssignedOrders, err = p.countRow(ctx,
		`SELECT count(*) FROM service_orders WHERE mechanic_id = $1 AND status = ANY($2)`,
		mechanicID, []string{string(models.StatusNew), string(models.StatusInProgress)}); err != nil {
		slog.ErrorContext(ctx, "MechanicDashboard failed", "mechanic_id", mechanicID, "err", err)
		return models.Dashboard{}, err
	}
	start, end := monthWindow(now)
	if d.CompletedOrdersThisMonth, err = p.countRow(ctx,
		`SELECT count(*) FROM service_orders
		 WHERE mechanic_id = $1 AND status = $2 AND completed_at >= $3 AND completed_at < $4`,
		mechanicID, models.StatusCompleted, start, end); err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}
