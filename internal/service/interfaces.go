package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// PersonService is the server-side business layer for contacts.
type PersonService interface {
	// UpsertPersons stores the contacts in upsertRequest, creating new records
	// and overwriting existing ones matched by client_side_id.
	UpsertPersons(ctx context.Context, upsertRequest models.UpsertRequest) error

	// ListPersons returns the contacts matching listRequest. Sync pulls set
	// IncludeDeleted so that removals propagate to other devices.
	ListPersons(ctx context.Context, listRequest models.ListRequest) ([]models.Person, error)

	// DeletePersons soft-deletes the contacts named in deleteRequest.
	DeletePersons(ctx context.Context, deleteRequest models.DeletePersonRequest) error
}

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata about the running server.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}

// PersonServiceWrapper defines middleware composition for PersonService.
// Implementations wrap an existing PersonService to add behavior such as
// logging or validating.
type PersonServiceWrapper interface {
	Wrap(PersonService) PersonService // returns a decorated PersonService applying additional behavior
}
