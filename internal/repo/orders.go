package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"warsztat/internal/models"
)

// ---------------- Service orders ----------------

// scanOrder reads one row of the orderColumns projection.
func scanOrder(rows pgx.Row) (models.ServiceOrder, error) {
	var (
		o models.ServiceOrder
		v models.Vehicle
		c models.Customer

		mUsername, mFirst, mLast *string
		mRole                    *models.Role
	)
	err := rows.Scan(
		&o.ID, &o.CreatedAt, &o.CompletedAt, &o.Description, &o.Status, &o.VehicleID, &o.MechanicID,
		&v.Make, &v.Model, &v.VIN, &v.RegistrationNumber, &v.Year, &v.ImageURL, &v.CustomerID,
		&c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email,
		&mUsername, &mFirst, &mLast, &mRole,
	)
	if err != nil {
		return models.ServiceOrder{}, err
	}
	v.ID = o.VehicleID
	c.ID = v.CustomerID
	v.Customer = &c
	o.Vehicle = &v
	if o.MechanicID != nil {
		m := models.User{ID: *o.MechanicID}
		if mUsername != nil {
			m.Username = *mUsername
		}
		if mFirst != nil {
			m.FirstName = *mFirst
		}
		if mLast != nil {
			m.LastName = *mLast
		}
		if mRole != nil {
			m.Role = *mRole
		}
		o.Mechanic = &m
	}
	return o, nil
}

func (p *pgRepo) queryOrders(ctx context.Context, where string, args ...any) ([]models.ServiceOrder, error) {
	q := "SELECT" + orderColumns + orderJoins + where
	var out []models.ServiceOrder
	err := queryRows(ctx, p.pool, q, args, func(rows pgx.Rows) error {
		o, err := scanOrder(rows)
		if err != nil {
			return err
		}
		out = append(out, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// loadOrderGraph attaches tasks, used parts and catalog parts to the given
// orders in two batched queries, avoiding per-order round trips.
func (p *pgRepo) loadOrderGraph(ctx context.Context, orders []models.ServiceOrder) ([]models.ServiceOrder, error) {
	if len(orders) == 0 {
		return orders, nil
	}
	orderIDs := collectIDs(orders, func(o models.ServiceOrder) int64 { return o.ID })

	const tq = `SELECT id, description, labor_cost, service_order_id
		FROM service_tasks WHERE service_order_id = ANY($1) ORDER BY id`
	tasksByOrder := make(map[int64][]models.ServiceTask)
	var taskIDs []int64
	err := queryRows(ctx, p.pool, tq, []any{orderIDs}, func(rows pgx.Rows) error {
		var t models.ServiceTask
		if err := rows.Scan(&t.ID, &t.Description, &t.LaborCost, &t.ServiceOrderID); err != nil {
			return err
		}
		tasksByOrder[t.ServiceOrderID] = append(tasksByOrder[t.ServiceOrderID], t)
		taskIDs = append(taskIDs, t.ID)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "loadOrderGraph tasks failed", "err", err)
		return nil, err
	}

	partsByTask := make(map[int64][]models.UsedPart)
	if len(taskIDs) > 0 {
		const uq = `SELECT up.id, up.quantity, up.part_id, up.service_task_id,
				pa.name, pa.category, pa.unit_price
			FROM used_parts up
			JOIN parts pa ON pa.id = up.part_id
			WHERE up.service_task_id = ANY($1) ORDER BY up.id`
		err = queryRows(ctx, p.pool, uq, []any{taskIDs}, func(rows pgx.Rows) error {
			var up models.UsedPart
			var pa models.Part
			if err := rows.Scan(&up.ID, &up.Quantity, &up.PartID, &up.ServiceTaskID,
				&pa.Name, &pa.Category, &pa.UnitPrice); err != nil {
				return err
			}
			pa.ID = up.PartID
			up.Part = &pa
			partsByTask[up.ServiceTaskID] = append(partsByTask[up.ServiceTaskID], up)
			return nil
		})
		if err != nil {
			slog.ErrorContext(ctx, "loadOrderGraph used parts failed", "err", err)
			return nil, err
		}
	}

	for i := range orders {
		tasks := tasksByOrder[orders[i].ID]
		for j := range tasks {
			tasks[j].UsedParts = partsByTask[tasks[j].ID]
		}
		orders[i].Tasks = tasks
	}
	return orders, nil
}

func (p *pgRepo) ListOrders(ctx context.Context, status *models.OrderStatus) ([]models.ServiceOrder, error) {
	where := " ORDER BY o.created_at DESC"
	var args []any
	if status != nil {
		where = " WHERE o.status = $1 ORDER BY o.created_at DESC"
		args = append(args, *status)
	}
	orders, err := p.queryOrders(ctx, where, args...)
	if err != nil {
		slog.ErrorContext(ctx, "ListOrders failed", "err", err)
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the order with tasks, used parts and comments attached.
func (p *pgRepo) GetOrder(ctx context.Context, id int64) (models.ServiceOrder, error) {
	slog.DebugContext(ctx, "GetOrder", "order_id", id)
	row := p.pool.QueryRow(ctx, "SELECT"+orderColumns+orderJoins+" WHERE o.id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		return models.ServiceOrder{}, notFound(err, models.ErrOrderNotFound)
	}
	loaded, err := p.loadOrderGraph(ctx, []models.ServiceOrder{o})
	if err != nil {
		return models.ServiceOrder{}, err
	}
	o = loaded[0]
	if o.Comments, err = p.ListComments(ctx, id); err != nil {
		return models.ServiceOrder{}, err
	}
	return o, nil
}

func (p *pgRepo) CreateOrder(ctx context.Context, o models.ServiceOrder) (models.ServiceOrder, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO service_orders (description, status, vehicle_id, mechanic_id)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at, status`,
		o.Description, models.StatusNew, o.VehicleID, o.MechanicID).
		Scan(&o.ID, &o.CreatedAt, &o.Status)
	if err != nil {
		slog.ErrorContext(ctx, "CreateOrder failed", "err", err)
		return models.ServiceOrder{}, err
	}
	return o, nil
}

// UpdateOrderStatus transitions the order and keeps completed_at in step:
// set when entering Completed, cleared when leaving it.
func (p *pgRepo) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus, now time.Time) (models.ServiceOrder, error) {
	slog.DebugContext(ctx, "UpdateOrderStatus", "order_id", id, "status", string(status))
	var completedAt *time.Time
	if status == models.StatusCompleted {
		completedAt = &now
	}
	tag, err := p.pool.Exec(ctx,
		`UPDATE service_orders SET status = $2, completed_at = $3 WHERE id = $1`,
		id, status, completedAt)
	if err != nil {
		slog.ErrorContext(ctx, "UpdateOrderStatus failed", "err", err)
		return models.ServiceOrder{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.ServiceOrder{}, models.ErrOrderNotFound
	}
	return p.GetOrder(ctx, id)
}

func (p *pgRepo) AssignMechanic(ctx context.Context, orderID int64, mechanicID *int64) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE service_orders SET mechanic_id = $2 WHERE id = $1`, orderID, mechanicID)
	if err != nil {
		slog.ErrorContext(ctx, "AssignMechanic failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (p *pgRepo) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "DeleteOrder failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

// ---------------- Tasks and used parts ----------------

func (p *pgRepo) AddTask(ctx context.Context, t models.ServiceTask) (models.ServiceTask, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO service_tasks (description, labor_cost, service_order_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		t.Description, t.LaborCost, t.ServiceOrderID).Scan(&t.ID)
	if err != nil {
		slog.ErrorContext(ctx, "AddTask failed", "err", err)
		return models.ServiceTask{}, err
	}
	return t, nil
}

func (p *pgRepo) DeleteTask(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM service_tasks WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "DeleteTask failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrTaskNotFound
	}
	return nil
}

func (p *pgRepo) AddUsedPart(ctx context.Context, up models.UsedPart) (models.UsedPart, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO used_parts (quantity, part_id, service_task_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		up.Quantity, up.PartID, up.ServiceTaskID).Scan(&up.ID)
	if err != nil {
		slog.ErrorContext(ctx, "AddUsedPart failed", "err", err)
		return models.UsedPart{}, err
	}
	return up, nil
}

func (p *pgRepo) DeleteUsedPart(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM used_parts WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "DeleteUsedPart failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPartNotFound
	}
	return nil
}
