package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// personRepository is the PostgreSQL-backed implementation of
// [PersonRepository]. It executes all contact CRUD operations directly
// against the "persons" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, client_side_id, iteration index, etc.).
type personRepository struct {
	*DB
	logger *logger.Logger
}

// NewPersonRepository constructs a [PersonRepository] backed by the provided
// database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		DB:     db,
		logger: logger,
	}
}

// GetPersons retrieves contacts that match the criteria in listRequest.
//
// Filtering is always applied by UserID. When listRequest.ClientSideIDs is
// non-empty, an additional IN-clause narrows the result to those identifiers
// only. Soft-deleted records are excluded unless IncludeDeleted is set.
func (p *personRepository) GetPersons(ctx context.Context, listRequest models.ListRequest) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPersonsQuery(listRequest)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.GetPersons").
			Int64("user_id", listRequest.UserID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.GetPersons").
			Int64("user_id", listRequest.UserID).
			Int("client side ids count", len(listRequest.ClientSideIDs)).
			Msg("failed to execute query for getting requested persons")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Person, 0, 50)

	for rows.Next() {
		var item models.Person
		var tags string

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ClientSideID,
			&item.Name,
			&item.Phone,
			&item.Email,
			&item.Address,
			&tags,
			&item.Notes.Text,
			&item.Income,
			&item.Age,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.GetPersons").
				Int64("user_id", listRequest.UserID).
				Msg("failed to scan person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.Tags = splitTags(tags)
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.GetPersons").
			Int64("user_id", listRequest.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpsertPersons creates or updates one or more contacts.
//
// Routing strategy:
//   - Exactly one contact → [upsertSinglePerson] (no transaction overhead).
//   - Two or more contacts → [upsertMultiplePersons] (wrapped in a transaction).
//
// Records are matched by (user_id, client_side_id). Conflict resolution is
// last-write-wins on updated_at: an incoming record older than the stored one
// is skipped without error, so lagging devices cannot clobber newer state.
// On success each inserted or updated [models.Person.ID] is populated with
// the server-assigned primary key.
func (p *personRepository) UpsertPersons(ctx context.Context, persons ...*models.Person) error {
	log := logger.FromContext(ctx)

	if len(persons) == 0 {
		log.Warn().
			Str("func", "personRepository.UpsertPersons").
			Msg("no persons provided")
		return nil
	}

	if len(persons) == 1 {
		return p.upsertSinglePerson(ctx, persons[0])
	}

	return p.upsertMultiplePersons(ctx, persons)
}

// upsertSinglePerson inserts or updates a single contact without opening a
// transaction.
//
// When the ON CONFLICT guard rejects a stale write, the query returns no
// rows; the record keeps its stored state and no error is reported.
func (p *personRepository) upsertSinglePerson(ctx context.Context, person *models.Person) error {
	log := logger.FromContext(ctx)

	normalizeUpdatedAt(person)

	query, args, err := buildUpsertPersonQuery(person)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.upsertSinglePerson").
			Str("client_side_id", person.ClientSideID).
			Msg("failed to build upsert query")
		return err
	}

	log.Debug().
		Str("func", "personRepository.upsertSinglePerson").
		Str("client_side_id", person.ClientSideID).
		Int64("user_id", person.UserID).
		Msg("upserting single person record")

	scanErr := p.DB.QueryRowContext(ctx, query, args...).Scan(&person.ID)
	if scanErr != nil {
		// no returned row: the stored record is newer, skip silently
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Debug().
				Str("func", "personRepository.upsertSinglePerson").
				Str("client_side_id", person.ClientSideID).
				Msg("skipped stale write")
			return nil
		}

		log.Err(scanErr).
			Str("func", "personRepository.upsertSinglePerson").
			Str("client_side_id", person.ClientSideID).
			Int64("user_id", person.UserID).
			Bool("retryable", p.errorClassificator.Classify(scanErr) == Retryable).
			Msg("failed to upsert person")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return nil
}

// upsertMultiplePersons inserts or updates two or more contacts inside a
// single database transaction.
//
// The transaction is rolled back automatically (via defer) if any individual
// upsert fails; the commit is attempted only after all records have been
// processed. Stale writes are skipped per record, same as in
// [upsertSinglePerson].
func (p *personRepository) upsertMultiplePersons(ctx context.Context, persons []*models.Person) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.upsertMultiplePersons").
			Int("count", len(persons)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, person := range persons {
		normalizeUpdatedAt(person)

		query, args, buildErr := buildUpsertPersonQuery(person)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "personRepository.upsertMultiplePersons").
				Int("iteration", idx+1).
				Str("client_side_id", person.ClientSideID).
				Msg("failed to build upsert query")
			return buildErr
		}

		log.Debug().
			Str("func", "personRepository.upsertMultiplePersons").
			Int("iteration", idx+1).
			Int("total", len(persons)).
			Str("client_side_id", person.ClientSideID).
			Int64("user_id", person.UserID).
			Msg("upserting person in transaction")

		scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&person.ID)
		if scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				log.Debug().
					Str("func", "personRepository.upsertMultiplePersons").
					Int("iteration", idx+1).
					Str("client_side_id", person.ClientSideID).
					Msg("skipped stale write")
				continue
			}

			log.Err(scanErr).
				Str("func", "personRepository.upsertMultiplePersons").
				Int("iteration", idx+1).
				Str("client_side_id", person.ClientSideID).
				Bool("retryable", p.errorClassificator.Classify(scanErr) == Retryable).
				Msg("failed to execute upsert query")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "personRepository.upsertMultiplePersons").
			Int("count", len(persons)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// DeletePersons performs a soft-delete of one or more contacts described in
// deleteRequest.
//
// Soft-delete sets the "deleted" flag to true and refreshes updated_at,
// preserving the record so that clients can detect the deletion during sync.
// Returns [ErrPersonNotFound] when no listed record exists for the user.
func (p *personRepository) DeletePersons(ctx context.Context, deleteRequest models.DeletePersonRequest) error {
	log := logger.FromContext(ctx)

	if len(deleteRequest.ClientSideIDs) == 0 {
		log.Warn().
			Str("func", "personRepository.DeletePersons").
			Msg("no delete requests provided")
		return nil
	}

	query, args, err := buildDeletePersonsQuery(deleteRequest)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.DeletePersons").
			Int64("user_id", deleteRequest.UserID).
			Msg("failed to build delete query")
		return err
	}

	result, execErr := p.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "personRepository.DeletePersons").
			Int64("user_id", deleteRequest.UserID).
			Int("entries_count", len(deleteRequest.ClientSideIDs)).
			Msg("failed to execute soft delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.DeletePersons").
			Int64("user_id", deleteRequest.UserID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "personRepository.DeletePersons").
			Int64("user_id", deleteRequest.UserID).
			Int("entries_count", len(deleteRequest.ClientSideIDs)).
			Msg("no records found for deletion")
		return ErrPersonNotFound
	}

	log.Info().
		Str("func", "personRepository.DeletePersons").
		Int64("user_id", deleteRequest.UserID).
		Int64("deleted_count", affected).
		Msg("successfully soft-deleted persons")

	return nil
}

// normalizeUpdatedAt stamps records that arrive without an updated_at so the
// last-write-wins comparison always has a value to work with.
func normalizeUpdatedAt(person *models.Person) {
	if person.UpdatedAt == nil {
		now := time.Now().UTC()
		person.UpdatedAt = &now
	}
}
