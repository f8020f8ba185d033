package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// localPersonRepository is the SQLite-backed implementation of
// [LocalPersonRepository]. It keeps the device's copy of the address book in
// the local "persons" table.
type localPersonRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalPersonRepository constructs a [LocalPersonRepository] backed by the
// provided SQLite connection and logger.
func NewLocalPersonRepository(db *DB, logger *logger.Logger) LocalPersonRepository {
	logger.Debug().Msg("creating local person repository")
	return &localPersonRepository{
		db:     db,
		logger: logger,
	}
}

// SavePersons inserts or updates contacts in the local database. Records are
// matched by client_side_id; an existing record is overwritten with the
// incoming field values.
//
// A single record is written directly; batches run inside a transaction with
// a prepared statement.
func (r *localPersonRepository) SavePersons(ctx context.Context, persons ...models.Person) error {
	log := logger.FromContext(ctx)

	if len(persons) == 0 {
		return nil
	}

	if len(persons) == 1 {
		person := persons[0]
		if _, err := r.db.ExecContext(ctx, saveLocalPerson, localPersonArgs(person)...); err != nil {
			log.Err(err).
				Str("func", "localPersonRepository.SavePersons").
				Str("client_side_id", person.ClientSideID).
				Msg("failed to save person locally")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localPersonRepository.SavePersons").
			Int("count", len(persons)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, saveLocalPerson)
	if err != nil {
		log.Err(err).
			Str("func", "localPersonRepository.SavePersons").
			Int("count", len(persons)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, person := range persons {
		log.Debug().
			Str("func", "localPersonRepository.SavePersons").
			Int("iteration", idx+1).
			Int("total", len(persons)).
			Str("client_side_id", person.ClientSideID).
			Msg("saving person in transaction")

		if _, execErr := stmt.ExecContext(ctx, localPersonArgs(person)...); execErr != nil {
			log.Err(execErr).
				Str("func", "localPersonRepository.SavePersons").
				Int("iteration", idx+1).
				Str("client_side_id", person.ClientSideID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localPersonRepository.SavePersons").
			Int("count", len(persons)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetAllPersons returns every active contact stored on the device, in
// insertion order. Soft-deleted records are excluded.
func (r *localPersonRepository) GetAllPersons(ctx context.Context) ([]models.Person, error) {
	return r.queryPersons(ctx, getAllLocalPersons, "GetAllPersons")
}

// GetAllPersonsWithDeleted returns every contact stored on the device,
// including soft-deleted records. Used by the sync service when pushing local
// state so that deletions propagate to the server.
func (r *localPersonRepository) GetAllPersonsWithDeleted(ctx context.Context) ([]models.Person, error) {
	return r.queryPersons(ctx, getAllLocalPersonsWithDeleted, "GetAllPersonsWithDeleted")
}

func (r *localPersonRepository) queryPersons(ctx context.Context, query, caller string) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "localPersonRepository."+caller).
			Msg("failed to execute query for local persons")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0, 50)

	for rows.Next() {
		var person models.Person
		var tags string

		scanErr := rows.Scan(
			&person.ID,
			&person.ClientSideID,
			&person.Name,
			&person.Phone,
			&person.Email,
			&person.Address,
			&tags,
			&person.Notes.Text,
			&person.Income,
			&person.Age,
			&person.CreatedAt,
			&person.UpdatedAt,
			&person.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localPersonRepository."+caller).
				Msg("failed to scan person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		person.Tags = splitTags(tags)
		persons = append(persons, person)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localPersonRepository."+caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return persons, nil
}

// DeletePerson soft-deletes a single local contact by client_side_id.
// Returns [ErrPersonNotFound] if no such record exists.
func (r *localPersonRepository) DeletePerson(ctx context.Context, clientSideID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLocalPerson, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "localPersonRepository.DeletePerson").
			Str("client_side_id", clientSideID).
			Msg("failed to execute soft delete query")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localPersonRepository.DeletePerson").
			Str("client_side_id", clientSideID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, rowsErr)
	}

	if affected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

// localPersonArgs orders a contact's fields to match the [saveLocalPerson]
// placeholder list.
func localPersonArgs(person models.Person) []any {
	return []any{
		person.ClientSideID,
		person.Name,
		person.Phone,
		person.Email,
		person.Address,
		joinTags(person.Tags),
		person.Notes.Text,
		person.Income,
		person.Age,
		person.CreatedAt,
		person.UpdatedAt,
		person.Deleted,
	}
}
