package repo

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"warsztat/internal/models"
)

// ---------------- Customers ----------------

func (p *pgRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	const q = `SELECT id, first_name, last_name, phone_number, email
		FROM customers ORDER BY last_name, first_name`
	var out []models.Customer
	err := queryRows(ctx, p.pool, q, nil, func(rows pgx.Rows) error {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "ListCustomers failed", "err", err)
		return nil, err
	}
	return out, nil
}

// GetCustomer returns the customer with their vehicles attached.
func (p *pgRepo) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	slog.DebugContext(ctx, "GetCustomer", "customer_id", id)
	var c models.Customer
	err := p.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, phone_number, email FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email)
	if err != nil {
		return models.Customer{}, notFound(err, models.ErrCustomerNotFound)
	}

	const vq = `SELECT id, make, model, vin, registration_number, year, image_url, customer_id
		FROM vehicles WHERE customer_id = $1 ORDER BY id`
	err = queryRows(ctx, p.pool, vq, []any{id}, func(rows pgx.Rows) error {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.VIN, &v.RegistrationNumber, &v.Year, &v.ImageURL, &v.CustomerID); err != nil {
			return err
		}
		c.Vehicles = append(c.Vehicles, v)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "GetCustomer vehicles failed", "err", err)
		return models.Customer{}, err
	}
	return c, nil
}

func (p *pgRepo) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO customers (first_name, last_name, phone_number, email)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.FirstName, c.LastName, c.PhoneNumber, c.Email).Scan(&c.ID)
	if err != nil {
		slog.ErrorContext(ctx, "CreateCustomer failed", "err", err)
		return models.Customer{}, err
	}
	return c, nil
}

func (p *pgRepo) UpdateCustomer(ctx context.Context, c models.Customer) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE customers SET first_name = $2, last_name = $3, phone_number = $4, email = $5
		 WHERE id = $1`,
		c.ID, c.FirstName, c.LastName, c.PhoneNumber, c.Email)
	if err != nil {
		slog.ErrorContext(ctx, "UpdateCustomer failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrCustomerNotFound
	}
	return nil
}

// DeleteCustomer removes the customer; vehicles and their orders cascade.
func (p *pgRepo) DeleteCustomer(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "DeleteCustomer failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrCustomerNotFound
	}
	return nil
}
