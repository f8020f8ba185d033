package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type personService struct {
	personRepository store.PersonRepository

	logger *logger.Logger
}

// NewPersonService constructs the server-side contact service on top of the
// given repository. Input validation lives in the validation decorator, not
// here (see NewPersonValidationService).
func NewPersonService(personRepository store.PersonRepository, logger *logger.Logger) PersonService {
	return &personService{
		personRepository: personRepository,
		logger:           logger,
	}
}

func (p *personService) UpsertPersons(ctx context.Context, upsertRequest models.UpsertRequest) error {
	for _, person := range upsertRequest.Persons {
		person.UserID = upsertRequest.UserID
	}
	return p.personRepository.UpsertPersons(ctx, upsertRequest.Persons...)
}

func (p *personService) ListPersons(ctx context.Context, listRequest models.ListRequest) ([]models.Person, error) {
	return p.personRepository.GetPersons(ctx, listRequest)
}

func (p *personService) DeletePersons(ctx context.Context, deleteRequest models.DeletePersonRequest) error {
	return p.personRepository.DeletePersons(ctx, deleteRequest)
}
