package project

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/db"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationsTable is the goose version table used by PostgresStore.
const MigrationsTable = "newsletter_migrations"

// PostgresStore keeps projects in the newsletter_current and
// newsletter_projects tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a store using pool. Call Migrate once before use.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates or upgrades the tables.
func (s *PostgresStore) Migrate(ctx context.Context, log *slog.Logger) error {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	return db.Migrate(ctx, s.pool, sub, MigrationsTable, log)
}

const (
	upsertCurrentSQL = `
INSERT INTO newsletter_current (singleton, id, name, state, saved_at)
VALUES (TRUE, $1::uuid, $2, $3, $4)
ON CONFLICT (singleton) DO UPDATE
SET id = EXCLUDED.id, name = EXCLUDED.name, state = EXCLUDED.state, saved_at = EXCLUDED.saved_at`

	upsertRecentSQL = `
INSERT INTO newsletter_projects (name, id, state, saved_at)
VALUES ($2, $1::uuid, $3, $4)
ON CONFLICT (name) DO UPDATE
SET id = EXCLUDED.id, state = EXCLUDED.state, saved_at = EXCLUDED.saved_at`

	trimRecentSQL = `
DELETE FROM newsletter_projects
WHERE name NOT IN (
    SELECT name FROM newsletter_projects ORDER BY saved_at DESC LIMIT $1
)`

	selectCurrentSQL = `SELECT id::text, name, state, saved_at FROM newsletter_current WHERE singleton`

	selectRecentSQL = `
SELECT id::text, name, state, saved_at FROM newsletter_projects
ORDER BY saved_at DESC LIMIT $1`
)

func (s *PostgresStore) SaveCurrent(ctx context.Context, p Project) error {
	state, err := json.Marshal(p.State)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	err = db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		args := []any{p.ID.String(), p.Name, state, p.SavedAt}
		if _, err := tx.Exec(ctx, upsertCurrentSQL, args...); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upsertRecentSQL, args...); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, trimRecentSQL, MaxRecent)
		return err
	})
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

func (s *PostgresStore) Current(ctx context.Context) (Project, error) {
	p, err := scanProject(s.pool.QueryRow(ctx, selectCurrentSQL))
	if errors.Is(err, pgx.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	return p, err
}

func (s *PostgresStore) ClearCurrent(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM newsletter_current`)
	return err
}

func (s *PostgresStore) Recent(ctx context.Context) ([]Project, error) {
	rows, err := s.pool.Query(ctx, selectRecentSQL, MaxRecent)
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	defer rows.Close()

	out := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return out, nil
}

func scanProject(row pgx.Row) (Project, error) {
	var (
		id      string
		name    string
		state   []byte
		savedAt time.Time
	)
	if err := row.Scan(&id, &name, &state, &savedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, err
		}
		return Project{}, errors.Join(ErrLoadFailed, err)
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return Project{}, errors.Join(ErrCorruptState, err)
	}
	n, err := content.Import(state)
	if err != nil {
		return Project{}, errors.Join(ErrCorruptState, err)
	}
	return Project{ID: uid, Name: name, SavedAt: savedAt.UTC(), State: n}, nil
}
