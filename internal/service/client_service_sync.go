package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type clientSyncService struct {
	persons       store.LocalPersonRepository
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientSyncService constructs a [ClientSyncService] that reconciles the
// local contact repository with the server through the adapter.
func NewClientSyncService(persons store.LocalPersonRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		persons:       persons,
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// FullSync implements [ClientSyncService]. The pull phase applies every
// server record that is newer than the local copy, soft-deleted records
// included so deletions travel between devices. The push phase uploads the
// device's active contacts and forwards local deletions. The server applies
// the same last-write-wins rule on its side, so pushing unchanged records is
// harmless.
func (s *clientSyncService) FullSync(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.pull(ctx, userID); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.FullSync").
			Int64("user_id", userID).
			Msg("pull phase failed")
		return err
	}

	if err := s.push(ctx, userID); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.FullSync").
			Int64("user_id", userID).
			Msg("push phase failed")
		return err
	}

	log.Debug().
		Str("func", "clientSyncService.FullSync").
		Int64("user_id", userID).
		Msg("full sync completed")

	return nil
}

func (s *clientSyncService) pull(ctx context.Context, userID int64) error {
	serverPersons, err := s.serverAdapter.ListPersons(ctx, models.ListRequest{
		UserID:         userID,
		IncludeDeleted: true,
	})
	if err != nil {
		return mapAdapterError(err)
	}
	if len(serverPersons) == 0 {
		return nil
	}

	local, err := s.persons.GetAllPersonsWithDeleted(ctx)
	if err != nil {
		return err
	}

	localByID := make(map[string]models.Person, len(local))
	for _, person := range local {
		localByID[person.ClientSideID] = person
	}

	fresher := make([]models.Person, 0, len(serverPersons))
	for _, serverPerson := range serverPersons {
		if localPerson, ok := localByID[serverPerson.ClientSideID]; ok &&
			!newerThan(serverPerson.UpdatedAt, localPerson.UpdatedAt) {
			continue
		}
		serverPerson.ID = 0 // local row IDs are assigned by SQLite
		fresher = append(fresher, serverPerson)
	}

	return s.persons.SavePersons(ctx, fresher...)
}

func (s *clientSyncService) push(ctx context.Context, userID int64) error {
	local, err := s.persons.GetAllPersonsWithDeleted(ctx)
	if err != nil {
		return err
	}

	var active []*models.Person
	var deletedIDs []string
	for idx := range local {
		if local[idx].Deleted {
			deletedIDs = append(deletedIDs, local[idx].ClientSideID)
			continue
		}
		active = append(active, &local[idx])
	}

	if len(active) > 0 {
		upsertErr := s.serverAdapter.UpsertPersons(ctx, models.UpsertRequest{
			UserID:  userID,
			Persons: active,
		})
		if upsertErr != nil {
			return mapAdapterError(upsertErr)
		}
	}

	if len(deletedIDs) > 0 {
		deleteErr := s.serverAdapter.DeletePersons(ctx, models.DeletePersonRequest{
			UserID:        userID,
			ClientSideIDs: deletedIDs,
		})
		// contacts the server never saw simply have nothing to delete
		if deleteErr != nil && !errors.Is(deleteErr, adapter.ErrNotFound) {
			return mapAdapterError(deleteErr)
		}
	}

	return nil
}

// newerThan reports whether a is a strictly later modification time than b.
// A missing timestamp loses to any present one.
func newerThan(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
