package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: adapter.ServerAdapter
// ─────────────────────────────────────────────

type mockServerAdapter struct {
	mu    sync.RWMutex
	token string

	registerFn func(ctx context.Context, user models.User) (models.AuthResponse, error)
	loginFn    func(ctx context.Context, user models.User) (models.AuthResponse, error)
	upsertFn   func(ctx context.Context, req models.UpsertRequest) error
	listFn     func(ctx context.Context, req models.ListRequest) ([]models.Person, error)
	deleteFn   func(ctx context.Context, req models.DeletePersonRequest) error
}

func (m *mockServerAdapter) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
}

func (m *mockServerAdapter) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *mockServerAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return models.AuthResponse{}, nil
}

func (m *mockServerAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.AuthResponse{}, nil
}

func (m *mockServerAdapter) UpsertPersons(ctx context.Context, req models.UpsertRequest) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, req)
	}
	return nil
}

func (m *mockServerAdapter) ListPersons(ctx context.Context, req models.ListRequest) ([]models.Person, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return nil, nil
}

func (m *mockServerAdapter) DeletePersons(ctx context.Context, req models.DeletePersonRequest) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	saveFn   func(ctx context.Context, session models.Session) error
	getFn    func(ctx context.Context) (models.Session, error)
	deleteFn func(ctx context.Context) error
}

func (m *mockSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return models.Session{}, store.ErrLocalSessionNotFound
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.LocalPersonRepository
// ─────────────────────────────────────────────

type mockLocalPersonRepository struct {
	saveFn          func(ctx context.Context, persons ...models.Person) error
	getAllFn        func(ctx context.Context) ([]models.Person, error)
	getAllDeletedFn func(ctx context.Context) ([]models.Person, error)
	deletePersonFn  func(ctx context.Context, clientSideID string) error
}

func (m *mockLocalPersonRepository) SavePersons(ctx context.Context, persons ...models.Person) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, persons...)
	}
	return nil
}

func (m *mockLocalPersonRepository) GetAllPersons(ctx context.Context) ([]models.Person, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockLocalPersonRepository) GetAllPersonsWithDeleted(ctx context.Context) ([]models.Person, error) {
	if m.getAllDeletedFn != nil {
		return m.getAllDeletedFn(ctx)
	}
	return nil, nil
}

func (m *mockLocalPersonRepository) DeletePerson(ctx context.Context, clientSideID string) error {
	if m.deletePersonFn != nil {
		return m.deletePersonFn(ctx, clientSideID)
	}
	return nil
}
