package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	UserRepository   UserRepository
	PersonRepository PersonRepository
}

// NewStorages initialises the server storage layer: it opens the PostgreSQL
// connection described by cfg, applies pending schema migrations, and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		PersonRepository: NewPersonRepository(db, logger),
	}, nil
}
