package repo

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"warsztat/internal/models"
)

// ---------------- Vehicles ----------------

func (p *pgRepo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	const q = `SELECT v.id, v.make, v.model, v.vin, v.registration_number, v.year, v.image_url, v.customer_id,
			c.first_name, c.last_name, c.phone_number, c.email
		FROM vehicles v
		JOIN customers c ON c.id = v.customer_id
		ORDER BY v.id`
	var out []models.Vehicle
	err := queryRows(ctx, p.pool, q, nil, func(rows pgx.Rows) error {
		var v models.Vehicle
		var c models.Customer
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.VIN, &v.RegistrationNumber, &v.Year, &v.ImageURL, &v.CustomerID,
			&c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email); err != nil {
			return err
		}
		c.ID = v.CustomerID
		v.Customer = &c
		out = append(out, v)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "ListVehicles failed", "err", err)
		return nil, err
	}
	return out, nil
}

func (p *pgRepo) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	slog.DebugContext(ctx, "GetVehicle", "vehicle_id", id)
	var v models.Vehicle
	var c models.Customer
	err := p.pool.QueryRow(ctx,
		`SELECT v.id, v.make, v.model, v.vin, v.registration_number, v.year, v.image_url, v.customer_id,
			c.first_name, c.last_name, c.phone_number, c.email
		 FROM vehicles v
		 JOIN customers c ON c.id = v.customer_id
		 WHERE v.id = $1`, id).
		Scan(&v.ID, &v.Make, &v.Model, &v.VIN, &v.RegistrationNumber, &v.Year, &v.ImageURL, &v.CustomerID,
			&c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email)
	if err != nil {
		return models.Vehicle{}, notFound(err, models.ErrVehicleNotFound)
	}
	c.ID = v.CustomerID
	v.Customer = &c
	return v, nil
}

func (p *pgRepo) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO vehicles (make, model, vin, registration_number, year, image_url, customer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		v.Make, v.Model, v.VIN, v.RegistrationNumber, v.Year, v.ImageURL, v.CustomerID).Scan(&v.ID)
	if err != nil {
		slog.ErrorContext(ctx, "CreateVehicle failed", "err", err)
		return models.Vehicle{}, err
	}
	return v, nil
}

func (p *pgRepo) UpdateVehicle(ctx context.Context, v models.Vehicle) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE vehicles SET make = $2, model = $3, vin = $4, registration_number = $5,
			year = $6, image_url = $7, customer_id = $8
		 WHERE id = $1`,
		v.ID, v.Make, v.Model, v.VIN, v.RegistrationNumber, v.Year, v.ImageURL, v.CustomerID)
	if err != nil {
		slog.ErrorContext(ctx, "UpdateVehicle failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrVehicleNotFound
	}
	return nil
}

func (p *pgRepo) DeleteVehicle(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "DeleteVehicle failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrVehicleNotFound
	}
	return nil
}
