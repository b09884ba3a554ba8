package repo

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"warsztat/internal/models"
)

func (p *pgRepo) ListParts(ctx context.Context) ([]models.Part, error) {
	const q = `SELECT id, name, category, unit_price FROM parts ORDER BY name`
	var out []models.Part
	err := queryRows(ctx, p.pool, q, nil, func(rows pgx.Rows) error {
		var pa models.Part
		if err := rows.Scan(&pa.ID, &pa.Name, &pa.Category, &pa.UnitPrice); err != nil {
			return err
		}
		out = append(out, pa)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "ListParts failed", "err", err)
		return nil, err
	}
	return out, nil
}

func (p *pgRepo) GetPart(ctx context.Context, id int64) (models.Part, error) {
	var pa models.Part
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, category, unit_price FROM parts WHERE id = $1`, id).
		Scan(&pa.ID, &pa.Name, &pa.Category, &pa.UnitPrice)
	if err != nil {
		return models.Part{}, notFound(err, models.ErrPartNotFound)
	}
	return pa, nil
}

func (p *pgRepo) CreatePart(ctx context.Context, pa models.Part) (models.Part, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO parts (name, category, unit_price) VALUES ($1, $2, $3) RETURNING id`,
		pa.Name, pa.Category, pa.UnitPrice).Scan(&pa.ID)
	if err != nil {
		slog.ErrorContext(ctx, "CreatePart failed", "err", err)
		return models.Part{}, err
	}
	return pa, nil
}

func (p *pgRepo) UpdatePart(ctx context.Context, pa models.Part) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE parts SET name = $2, category = $3, unit_price = $4 WHERE id = $1`,
		pa.ID, pa.Name, pa.Category, pa.UnitPrice)
	if err != nil {
		slog.ErrorContext(ctx, "UpdatePart failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPartNotFound
	}
	return nil
}

func (p *pgRepo) DeletePart(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "DeletePart failed", "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPartNotFound
	}
	return nil
}
