package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalPersonRepository is the low-level local contact repository.
type LocalPersonRepository interface {
	SavePersons(ctx context.Context, persons ...models.Person) error
	GetAllPersons(ctx context.Context) ([]models.Person, error)
	GetAllPersonsWithDeleted(ctx context.Context) ([]models.Person, error)
	DeletePerson(ctx context.Context, clientSideID string) error
}

// SessionRepository persists the single authenticated session of the device.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
