package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type clientAuthService struct {
	sessions      store.SessionRepository
	serverAdapter adapter.ServerAdapter
	credentials   config.ClientAuth

	logger *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] that authenticates
// with the credentials from authCfg and persists the issued token through the
// session repository.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, authCfg config.ClientAuth, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:      sessions,
		serverAdapter: serverAdapter,
		credentials:   authCfg,
		logger:        logger,
	}
}

// Register implements [ClientAuthService]. It creates the account on the
// server with the configured credentials and persists the issued session.
func (s *clientAuthService) Register(ctx context.Context, name string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if s.credentials.Login == "" || s.credentials.Password == "" {
		return models.Session{}, ErrNoClientCredentials
	}

	authResp, err := s.serverAdapter.Register(ctx, models.User{
		Login:    s.credentials.Login,
		Password: s.credentials.Password,
		Name:     name,
	})
	if err != nil {
		log.Err(err).
			Str("func", "clientAuthService.Register").
			Str("login", s.credentials.Login).
			Msg("registration on server failed")
		return models.Session{}, mapAdapterError(err)
	}

	return s.saveSession(ctx, authResp.Token)
}

// Login implements [ClientAuthService]. It authenticates against the server
// with the configured credentials and persists the issued session.
func (s *clientAuthService) Login(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	if s.credentials.Login == "" || s.credentials.Password == "" {
		return models.Session{}, ErrNoClientCredentials
	}

	authResp, err := s.serverAdapter.Login(ctx, models.User{
		Login:    s.credentials.Login,
		Password: s.credentials.Password,
	})
	if err != nil {
		log.Err(err).
			Str("func", "clientAuthService.Login").
			Str("login", s.credentials.Login).
			Msg("login on server failed")
		return models.Session{}, mapAdapterError(err)
	}

	return s.saveSession(ctx, authResp.Token)
}

// EnsureSession implements [ClientAuthService]. A stored session is reused
// as-is; an expired token surfaces later as [ErrTokenIsExpiredOrInvalid], at
// which point the caller should Login again.
func (s *clientAuthService) EnsureSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessions.GetSession(ctx)
	if err == nil && session.Token != "" {
		s.serverAdapter.SetToken(session.Token)
		log.Debug().
			Str("func", "clientAuthService.EnsureSession").
			Int64("user_id", session.UserID).
			Msg("reusing stored session")
		return session, nil
	}
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, err
	}

	return s.Login(ctx)
}

// Logout implements [ClientAuthService].
func (s *clientAuthService) Logout(ctx context.Context) error {
	s.serverAdapter.SetToken("")
	return s.sessions.DeleteSession(ctx)
}

// saveSession derives the user ID from the token's subject claim and persists
// the session locally.
func (s *clientAuthService) saveSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		log.Err(err).
			Str("func", "clientAuthService.saveSession").
			Msg("failed to parse user ID from token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	session := models.Session{
		UserID:  userID,
		Token:   token,
		SavedAt: time.Now().UTC(),
	}
	if err = s.sessions.SaveSession(ctx, session); err != nil {
		log.Err(err).
			Str("func", "clientAuthService.saveSession").
			Int64("user_id", userID).
			Msg("failed to persist session locally")
		return models.Session{}, err
	}

	return session, nil
}
