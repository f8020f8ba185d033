package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// PersonValidationService is a PersonService decorator that validates every
// request before passing it to the wrapped service.
type PersonValidationService struct {
	inner     PersonService
	validator validators.Validator
}

// NewPersonValidationService constructs the validation decorator. Call Wrap
// to attach the service it should guard.
func NewPersonValidationService() PersonServiceWrapper {
	return &PersonValidationService{
		validator: validators.NewPersonValidator(),
	}
}

// UpsertPersons validates the request and every contact in it, then
// delegates to the wrapped service.
func (v *PersonValidationService) UpsertPersons(ctx context.Context, upsertRequest models.UpsertRequest) error {
	if len(upsertRequest.Persons) == 0 {
		return ErrValidationNoPersonsProvided
	}

	if err := v.validator.Validate(ctx, upsertRequest); err != nil {
		return fmt.Errorf("error during person validation before saving: %w", err)
	}

	return v.inner.UpsertPersons(ctx, upsertRequest)
}

// ListPersons validates the request, then delegates to the wrapped service.
func (v *PersonValidationService) ListPersons(ctx context.Context, listRequest models.ListRequest) ([]models.Person, error) {
	if listRequest.UserID <= 0 {
		return nil, ErrValidationNoUserID
	}

	if err := v.validator.Validate(ctx, listRequest); err != nil {
		return nil, fmt.Errorf("error during list request validation: %w", err)
	}

	return v.inner.ListPersons(ctx, listRequest)
}

// DeletePersons validates the request, then delegates to the wrapped service.
func (v *PersonValidationService) DeletePersons(ctx context.Context, deleteRequest models.DeletePersonRequest) error {
	if len(deleteRequest.ClientSideIDs) == 0 {
		return ErrValidationNoDeleteIDsProvided
	}

	if err := v.validator.Validate(ctx, deleteRequest); err != nil {
		return fmt.Errorf("error during delete request validation: %w", err)
	}

	return v.inner.DeletePersons(ctx, deleteRequest)
}

// Wrap implements PersonServiceWrapper.
func (v *PersonValidationService) Wrap(inner PersonService) PersonService {
	v.inner = inner
	return v
}
