package repo

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"warsztat/internal/models"
)

func (p *pgRepo) AddComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO comments (content, service_order_id, author_id)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		c.Content, c.ServiceOrderID, c.AuthorID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		slog.ErrorContext(ctx, "AddComment failed", "err", err)
		return models.Comment{}, err
	}
	return c, nil
}

// ListComments returns the order's comments oldest first, with the author's
// display name resolved when the account still exists.
func (p *pgRepo) ListComments(ctx context.Context, orderID int64) ([]models.Comment, error) {
	const q = `SELECT cm.id, cm.content, cm.created_at, cm.service_order_id, cm.author_id,
			u.username, u.first_name, u.last_name
		FROM comments cm
		LEFT JOIN users u ON u.id = cm.author_id
		WHERE cm.service_order_id = $1
		ORDER BY cm.created_at`
	var out []models.Comment
	err := queryRows(ctx, p.pool, q, []any{orderID}, func(rows pgx.Rows) error {
		var c models.Comment
		var username, first, last *string
		if err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.ServiceOrderID, &c.AuthorID,
			&username, &first, &last); err != nil {
			return err
		}
		if c.AuthorID != nil {
			u := models.User{ID: *c.AuthorID}
			if username != nil {
				u.Username = *username
			}
			if first != nil {
				u.FirstName = *first
			}
			if last != nil {
				u.LastName = *last
			}
			c.AuthorName = u.FullName()
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "ListComments failed", "err", err)
		return nil, err
	}
	return out, nil
}
