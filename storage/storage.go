package storage

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/marcelsud/library-admin/config"
	"github.com/marcelsud/library-admin/storage/postgres"
	"github.com/marcelsud/library-admin/storage/sqlite"
)

// Store is a catalog backend: both repositories share its connection
type Store interface {
	Authors() author.Repository
	Books() book.Repository
	CreateSchema(ctx context.Context) error
	CountAuthors(ctx context.Context) (int64, error)
	CountBooks(ctx context.Context) (int64, error)
	CountBooksByGenre(ctx context.Context) (map[string]int64, error)
	Close(ctx context.Context) error
}

// Open connects to the backend selected by DB_DRIVER
func Open(cfg *config.Config) (Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		if err := cfg.ValidatePostgres(); err != nil {
			return nil, err
		}
		s, err := postgres.NewStoreWithPoolConfig(
			cfg.PostgresConnectionString(),
			cfg.GetPostgresMaxOpenConns(),
			cfg.GetPostgresMaxIdleConns(),
			cfg.GetPostgresConnMaxLifeMinutes(),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
