package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-client/internal/config"
	"github.com/MKhiriev/go-movie-client/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// SessionStore holds the token and active username.
	SessionStore SessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer. With
// cfg.Ephemeral set it returns an in-memory session store. Otherwise it:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [SessionStore] to the database.
//
// Failures of steps 1 and 2 are reported as [ErrSessionStoreUnavailable].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.Ephemeral {
		logger.Info().Msg("using in-memory session store")
		return &ClientStorages{SessionStore: NewMemorySessionStore()}, nil
	}

	logger.Info().Str("dsn", cfg.DB.DSN).Msg("opening session store...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite connection error: %w", ErrSessionStoreUnavailable, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrSessionStoreUnavailable, err)
	}

	return &ClientStorages{
		SessionStore: NewSessionRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
