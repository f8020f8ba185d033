package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// UserRepository handles user account persistence on the server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// PersonRepository handles contact persistence on the server.
type PersonRepository interface {
	// UpsertPersons creates or updates contacts matched by
	// (user_id, client_side_id). Stale writes are skipped: a record is only
	// overwritten when the incoming updated_at is not older than the stored one.
	UpsertPersons(ctx context.Context, persons ...*models.Person) error

	// GetPersons retrieves contacts matching the criteria in listRequest.
	GetPersons(ctx context.Context, listRequest models.ListRequest) ([]models.Person, error)

	// DeletePersons soft-deletes the contacts listed in deleteRequest.
	DeletePersons(ctx context.Context, deleteRequest models.DeletePersonRequest) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
