package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// el tráfico de escritura es bajo (solo resultados compartidos)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS pawstars_results (
	id          TEXT PRIMARY KEY,
	kind        TEXT NOT NULL CHECK (kind IN ('fortune', 'compatibility')),
	text        TEXT NOT NULL,
	dog_name    TEXT NOT NULL,
	owner_name  TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
)`

// Migrate crea la tabla si no existe. Idempotente; se corre en cada arranque.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
