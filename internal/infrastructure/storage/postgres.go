package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dominickcapital/crm-api/pkg/config"
)

// PostgresStore implementa el Store sobre una única tabla clave -> JSONB.
// Mantiene la semántica de blob store: cada Set reemplaza el documento
// completo de la colección.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la app.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// NewPostgresStore crea la tabla kv_store si no existe.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla kv_store: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Get deserializa el documento de la clave en v.
func (s *PostgresStore) Get(key string, v any) (bool, error) {
	var raw []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("leer %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("deserializar %q: %w", key, err)
	}
	return true, nil
}

// Set reemplaza el documento de la clave (upsert).
func (s *PostgresStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	_, err = s.pool.Exec(context.Background(), `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	if err != nil {
		return fmt.Errorf("escribir %q: %w", key, err)
	}
	return nil
}

// Remove elimina la clave.
func (s *PostgresStore) Remove(key string) error {
	_, err := s.pool.Exec(context.Background(),
		`DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("eliminar %q: %w", key, err)
	}
	return nil
}
