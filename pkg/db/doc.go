// Package db wraps [github.com/jackc/pgx/v5/pgxpool] with the connection,
// migration and transaction helpers used by the Postgres project store.
//
// Connections are retried with a linear backoff so the service can start
// before the database accepts connections:
//
//	pool, err := db.Connect(ctx, db.Config{URL: os.Getenv("DATABASE_URL")})
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// Schema migrations are goose SQL files read from any [io/fs.FS]:
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	err := db.Migrate(ctx, pool, migrations, "newsletter_migrations", log)
package db
