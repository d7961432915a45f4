// Package posts provides the PostgreSQL-backed repository for blog posts.
package posts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/inkpost/internal/common"
	"github.com/dmitrijs2005/inkpost/internal/dbx"
	"github.com/dmitrijs2005/inkpost/internal/server/models"
)

// PostgresRepository implements post storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (id, title, description, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_on
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Description, post.CreatedBy).Scan(&post.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// List returns every post in store-native order; the public feed is
// deliberately unfiltered.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, title, description, created_by, created_on FROM posts`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Post
	for rows.Next() {
		var item models.Post
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.CreatedBy, &item.CreatedOn,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateOwned updates title/description only when both id and owner match,
// in one statement. Zero affected rows means missing post or foreign owner;
// the two cases are intentionally indistinguishable.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, ownerID, title, description string) error {
	query :=
		`UPDATE posts SET title = $1, description = $2
		 WHERE id = $3 AND created_by = $4
		 `

	res, err := r.db.ExecContext(ctx, query, title, description, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// DeleteOwned removes the post under the same combined id+owner condition
// as UpdateOwned.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	query :=
		`DELETE FROM posts
		 WHERE id = $1 AND created_by = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
