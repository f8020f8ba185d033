package service

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type clientPersonService struct {
	persons       store.LocalPersonRepository
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientPersonService constructs a [ClientPersonService] backed by the
// device's local contact repository.
func NewClientPersonService(persons store.LocalPersonRepository, logger *logger.Logger) ClientPersonService {
	return &clientPersonService{
		persons:       persons,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// GetAll implements [ClientPersonService].
func (s *clientPersonService) GetAll(ctx context.Context) ([]models.Person, error) {
	return s.persons.GetAllPersons(ctx)
}

// Create implements [ClientPersonService].
func (s *clientPersonService) Create(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	if person.ClientSideID == "" {
		person.ClientSideID = s.uuidGenerator.Generate()
	}
	s.stamp(&person)

	if err := s.persons.SavePersons(ctx, person); err != nil {
		return models.Person{}, err
	}

	log.Debug().
		Str("func", "clientPersonService.Create").
		Str("client_side_id", person.ClientSideID).
		Msg("contact created locally")

	return person, nil
}

// Update implements [ClientPersonService].
func (s *clientPersonService) Update(ctx context.Context, person models.Person) error {
	if person.ClientSideID == "" {
		return validators.ErrInvalidClientSideID
	}
	s.stamp(&person)

	return s.persons.SavePersons(ctx, person)
}

// Delete implements [ClientPersonService].
func (s *clientPersonService) Delete(ctx context.Context, clientSideID string) error {
	return s.persons.DeletePerson(ctx, clientSideID)
}

// PersistBook implements [ClientPersonService]. Contacts are matched between
// the two snapshots by client-side ID; an after-record without one is new.
func (s *clientPersonService) PersistBook(ctx context.Context, before, after []models.Person) error {
	log := logger.FromContext(ctx)

	previous := make(map[string]models.Person, len(before))
	for _, person := range before {
		previous[person.ClientSideID] = person
	}

	var changed []models.Person
	kept := make(map[string]struct{}, len(after))

	for _, person := range after {
		if person.ClientSideID == "" {
			person.ClientSideID = s.uuidGenerator.Generate()
			s.stamp(&person)
			changed = append(changed, person)
			continue
		}

		kept[person.ClientSideID] = struct{}{}
		if old, ok := previous[person.ClientSideID]; !ok || !samePersonFields(old, person) {
			s.stamp(&person)
			changed = append(changed, person)
		}
	}

	if len(changed) > 0 {
		if err := s.persons.SavePersons(ctx, changed...); err != nil {
			return err
		}
	}

	for clientSideID := range previous {
		if _, ok := kept[clientSideID]; ok {
			continue
		}
		if err := s.persons.DeletePerson(ctx, clientSideID); err != nil {
			return err
		}
	}

	log.Debug().
		Str("func", "clientPersonService.PersistBook").
		Int("changed", len(changed)).
		Int("removed", len(previous)-len(kept)).
		Msg("address book changes persisted")

	return nil
}

// stamp records the modification time on the contact.
func (s *clientPersonService) stamp(person *models.Person) {
	now := time.Now().UTC()
	person.UpdatedAt = &now
	if person.CreatedAt == nil {
		person.CreatedAt = &now
	}
}

// samePersonFields reports whether the user-editable fields of two contacts
// are identical. Identifiers and timestamps are ignored.
func samePersonFields(a, b models.Person) bool {
	return a.Name == b.Name &&
		a.Phone == b.Phone &&
		a.Email == b.Email &&
		a.Address == b.Address &&
		slices.Equal(a.Tags, b.Tags) &&
		a.Notes == b.Notes &&
		a.Income == b.Income &&
		a.Age == b.Age
}
