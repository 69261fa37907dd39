package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fundrise/internal/docstore"
)

type backend int

const (
	backendMongo backend = iota + 1
	backendPostgres
	backendMemory
)

func storeBackend(databaseURL string) (backend, error) {
	scheme, _, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return 0, fmt.Errorf("DATABASE_URL has no scheme")
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return backendMongo, nil
	case "postgres", "postgresql":
		return backendPostgres, nil
	case "memory":
		return backendMemory, nil
	default:
		return 0, fmt.Errorf("unsupported DATABASE_URL scheme %q", scheme)
	}
}

// OpenStore connects the document store selected by the DATABASE_URL scheme.
func OpenStore(ctx context.Context, cfg *Config) (docstore.Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	kind, err := storeBackend(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch kind {
	case backendMongo:
		return docstore.NewMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	case backendPostgres:
		pool, err := NewDBPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store, err := docstore.NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	default:
		name := cfg.DatabaseName
		if name == "" {
			name = docstore.DefaultDatabaseName
		}
		return docstore.NewMemory(name), nil
	}
}

// NewDBPool initializes a new pgx connection pool using the provided configuration.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
