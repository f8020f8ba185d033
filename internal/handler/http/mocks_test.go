package http

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock: service.PersonService
// ─────────────────────────────────────────────

type mockPersonService struct {
	upsertFn func(ctx context.Context, req models.UpsertRequest) error
	listFn   func(ctx context.Context, req models.ListRequest) ([]models.Person, error)
	deleteFn func(ctx context.Context, req models.DeletePersonRequest) error
}

func (m *mockPersonService) UpsertPersons(ctx context.Context, req models.UpsertRequest) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, req)
	}
	return nil
}

func (m *mockPersonService) ListPersons(ctx context.Context, req models.ListRequest) ([]models.Person, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return nil, nil
}

func (m *mockPersonService) DeletePersons(ctx context.Context, req models.DeletePersonRequest) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(authSvc *mockAuthService, personSvc *mockPersonService) *Handler {
	if authSvc == nil {
		authSvc = &mockAuthService{}
	}
	if personSvc == nil {
		personSvc = &mockPersonService{}
	}
	return NewHandler(&service.Services{
		AuthService:   authSvc,
		PersonService: personSvc,
	}, logger.Nop())
}
