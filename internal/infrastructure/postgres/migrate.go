package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

const createDeliveriesTableSQL = `
CREATE TABLE IF NOT EXISTS deliveries (
    id BIGSERIAL PRIMARY KEY,
    packageid TEXT UNIQUE NOT NULL,
    client_name TEXT,
    origin TEXT,
    destination TEXT,
    status TEXT,
    expected_delivery_date DATE NOT NULL,
    actual_delivery_date DATE,
    on_time BOOLEAN NOT NULL
);`

// Migrate crea el esquema si no existe (bootstrap idempotente al arranque).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createUsersTableSQL); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if _, err := pool.Exec(ctx, createDeliveriesTableSQL); err != nil {
		return fmt.Errorf("migrate deliveries: %w", err)
	}
	return nil
}
