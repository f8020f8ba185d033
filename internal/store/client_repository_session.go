package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The sessions table holds at most one row.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided SQLite connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession stores or replaces the device session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveLocalSession, session.UserID, session.Token, session.SavedAt); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the stored device session.
// Returns [ErrLocalSessionNotFound] when no session has been saved yet.
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := r.db.QueryRowContext(ctx, getLocalSession).Scan(&session.UserID, &session.Token, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}

		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// DeleteSession removes the stored device session. Deleting a session that
// does not exist is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteLocalSession); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
