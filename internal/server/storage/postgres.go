// Package storage wires the PostgreSQL connection, schema migrations, and
// repository construction behind a single manager with an explicit lifecycle.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/inkpost/internal/server/migrations"
	"github.com/dmitrijs2005/inkpost/internal/server/repositories/posts"
	"github.com/dmitrijs2005/inkpost/internal/server/repositories/users"
)

type PostgresManager struct {
	db    *sql.DB
	users users.Repository
	posts posts.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Posts() posts.Repository {
	return m.posts
}

// Close releases the underlying connection pool. The manager is unusable
// afterwards.
func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresManager opens the pool, applies pending migrations, and returns
// a manager exposing the repositories.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		posts: posts.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
