package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: inner PersonService
// ─────────────────────────────────────────────

type mockInnerPersonService struct {
	upsertCalled bool
	listCalled   bool
	deleteCalled bool
}

func (m *mockInnerPersonService) UpsertPersons(ctx context.Context, req models.UpsertRequest) error {
	m.upsertCalled = true
	return nil
}

func (m *mockInnerPersonService) ListPersons(ctx context.Context, req models.ListRequest) ([]models.Person, error) {
	m.listCalled = true
	return nil, nil
}

func (m *mockInnerPersonService) DeletePersons(ctx context.Context, req models.DeletePersonRequest) error {
	m.deleteCalled = true
	return nil
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestPersonValidationService_UpsertPersons(t *testing.T) {
	inner := &mockInnerPersonService{}
	svc := NewPersonValidationService().Wrap(inner)
	ctx := context.Background()

	err := svc.UpsertPersons(ctx, models.UpsertRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrValidationNoPersonsProvided)
	assert.False(t, inner.upsertCalled)

	err = svc.UpsertPersons(ctx, models.UpsertRequest{
		UserID:  1,
		Persons: []*models.Person{{ClientSideID: "csid-1"}}, // missing name
	})
	assert.ErrorIs(t, err, validators.ErrEmptyName)
	assert.False(t, inner.upsertCalled)

	err = svc.UpsertPersons(ctx, models.UpsertRequest{
		UserID:  1,
		Persons: []*models.Person{{ClientSideID: "csid-1", Name: "John Doe"}},
	})
	require.NoError(t, err)
	assert.True(t, inner.upsertCalled)
}

func TestPersonValidationService_ListPersons(t *testing.T) {
	inner := &mockInnerPersonService{}
	svc := NewPersonValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.ListPersons(ctx, models.ListRequest{})
	assert.ErrorIs(t, err, ErrValidationNoUserID)
	assert.False(t, inner.listCalled)

	_, err = svc.ListPersons(ctx, models.ListRequest{UserID: 1})
	require.NoError(t, err)
	assert.True(t, inner.listCalled)
}

func TestPersonValidationService_DeletePersons(t *testing.T) {
	inner := &mockInnerPersonService{}
	svc := NewPersonValidationService().Wrap(inner)
	ctx := context.Background()

	err := svc.DeletePersons(ctx, models.DeletePersonRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrValidationNoDeleteIDsProvided)
	assert.False(t, inner.deleteCalled)

	err = svc.DeletePersons(ctx, models.DeletePersonRequest{
		UserID:        1,
		ClientSideIDs: []string{"csid-1"},
	})
	require.NoError(t, err)
	assert.True(t, inner.deleteCalled)
}
