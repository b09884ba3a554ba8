package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// notFound maps pgx.ErrNoRows onto a domain sentinel, passing other errors through.
func notFound(err, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}

// orderColumns is the joined projection shared by every order query:
// the order row plus its vehicle, the vehicle's customer, and the
// (possibly absent) assigned mechanic.
const orderColumns = `
	o.id, o.created_at, o.completed_at, o.description, o.status, o.vehicle_id, o.mechanic_id,
	v.make, v.model, v.vin, v.registration_number, v.year, v.image_url, v.customer_id,
	c.first_name, c.last_name, c.phone_number, c.email,
	m.username, m.first_name, m.last_name, m.role`

const orderJoins = `
	FROM service_orders o
	JOIN vehicles v ON v.id = o.vehicle_id
	JOIN customers c ON c.id = v.customer_id
	LEFT JOIN users m ON m.id = o.mechanic_id`

// collectIDs pulls the primary keys out of a loaded slice via get.
func collectIDs[T any](items []T, get func(T) int64) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, get(it))
	}
	return ids
}

// queryRows is a small wrapper that closes rows and surfaces rows.Err.
func queryRows(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, sql string, args []any, scan func(pgx.Rows) error) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
