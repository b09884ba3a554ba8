package repo

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"warsztat/internal/models"
)

func (p *pgRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := p.pool.QueryRow(ctx,
		`SELECT id, username, first_name, last_name, role FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Role)
	if err != nil {
		return models.User{}, notFound(err, models.ErrUserNotFound)
	}
	return u, nil
}

func (p *pgRepo) GetLocalCredentialByUsername(ctx context.Context, username string) (models.LocalCredential, models.User, error) {
	var (
		cred models.LocalCredential
		u    models.User
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, first_name, last_name, role
		 FROM users WHERE lower(username) = lower($1)`, username).
		Scan(&u.ID, &u.Username, &cred.PasswordHash, &u.FirstName, &u.LastName, &u.Role)
	if err != nil {
		return models.LocalCredential{}, models.User{}, notFound(err, models.ErrUserNotFound)
	}
	cred.UserID = u.ID
	cred.Username = u.Username
	return cred, u, nil
}

func (p *pgRepo) ListMechanics(ctx context.Context) ([]models.User, error) {
	const q = `SELECT id, username, first_name, last_name, role
		FROM users WHERE role = $1 ORDER BY last_name, first_name`
	var out []models.User
	err := queryRows(ctx, p.pool, q, []any{models.RoleMechanic}, func(rows pgx.Rows) error {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Role); err != nil {
			return err
		}
		out = append(out, u)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "ListMechanics failed", "err", err)
		return nil, err
	}
	return out, nil
}
