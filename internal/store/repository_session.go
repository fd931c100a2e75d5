package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/models"
)

// sessionRepository is the SQLite-backed implementation of [SessionStore].
// Every read goes to the database; nothing is cached.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionStore] backed by db. The session
// table must already exist (see [DB.Migrate]).
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	values, err := r.read(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return values[KeyToken], nil
}

func (r *sessionRepository) Username(ctx context.Context) (string, error) {
	values, err := r.read(ctx, KeyUser)
	if err != nil {
		return "", err
	}
	return values[KeyUser], nil
}

func (r *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	values, err := r.read(ctx, KeyToken, KeyUser)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{Token: values[KeyToken], Username: values[KeyUser]}, nil
}

func (r *sessionRepository) Save(ctx context.Context, token, username string) error {
	return r.write(ctx, [2]string{KeyToken, token}, [2]string{KeyUser, username})
}

func (r *sessionRepository) SetUsername(ctx context.Context, username string) error {
	return r.write(ctx, [2]string{KeyUser, username})
}

// Clear deletes both keys. Clearing an empty session is not an error.
func (r *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSession(KeyToken, KeyUser)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Clear").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Clear").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) read(ctx context.Context, keys ...string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSession(keys...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.read").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.read").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "*sessionRepository.read").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (r *sessionRepository) write(ctx context.Context, kv ...[2]string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSession(r.now().UTC(), kv...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.write").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.write").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
