// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

var personColumns = []string{
	"id",
	"user_id",
	"client_side_id",
	"name",
	"phone",
	"email",
	"address",
	"tags",
	"notes",
	"income",
	"age",
	"created_at",
	"updated_at",
	"deleted",
}

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetPersonsQuery builds a SELECT over the persons table from the
// criteria in listRequest. Filtering is always applied by user_id; the
// other criteria are added only when present.
func buildGetPersonsQuery(listRequest models.ListRequest) (string, []any, error) {
	builder := psql.
		Select(personColumns...).
		From("persons").
		Where(sq.Eq{"user_id": listRequest.UserID})

	if len(listRequest.ClientSideIDs) > 0 {
		builder = builder.Where(sq.Eq{"client_side_id": listRequest.ClientSideIDs})
	}

	if !listRequest.IncludeDeleted {
		builder = builder.Where(sq.Eq{"deleted": false})
	}

	if len(listRequest.Tags) > 0 {
		tagConditions := make(sq.Or, 0, len(listRequest.Tags))
		for _, tag := range listRequest.Tags {
			tagConditions = append(tagConditions, sq.Like{"tags": "%" + tag + "%"})
		}
		builder = builder.Where(tagConditions)
	}

	query, args, err := builder.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertPersonQuery builds an INSERT ... ON CONFLICT for a single
// contact. Conflicts are matched by (user_id, client_side_id); the update
// branch only fires when the incoming updated_at is not older than the stored
// one, so stale writes from lagging devices are silently skipped. The query
// returns the record id when a row was inserted or updated and no rows when
// the write was skipped.
func buildUpsertPersonQuery(person *models.Person) (string, []any, error) {
	query, args, err := psql.
		Insert("persons").
		Columns("user_id", "client_side_id", "name", "phone", "email", "address",
			"tags", "notes", "income", "age", "updated_at", "deleted").
		Values(person.UserID, person.ClientSideID, person.Name, person.Phone,
			person.Email, person.Address, joinTags(person.Tags), person.Notes.Text,
			person.Income, person.Age, person.UpdatedAt, person.Deleted).
		Suffix(`ON CONFLICT (user_id, client_side_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			tags = EXCLUDED.tags,
			notes = EXCLUDED.notes,
			income = EXCLUDED.income,
			age = EXCLUDED.age,
			updated_at = EXCLUDED.updated_at,
			deleted = EXCLUDED.deleted
		WHERE persons.updated_at <= EXCLUDED.updated_at
		RETURNING id`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeletePersonsQuery builds the soft-delete UPDATE for the contacts
// listed in deleteRequest. Deleted records are kept so that removals
// propagate to other devices during sync.
func buildDeletePersonsQuery(deleteRequest models.DeletePersonRequest) (string, []any, error) {
	query, args, err := psql.
		Update("persons").
		Set("deleted", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": deleteRequest.UserID}).
		Where(sq.Eq{"client_side_id": deleteRequest.ClientSideIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// joinTags flattens a tag list into the comma-separated form stored in the
// tags column.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags restores a tag list from its stored comma-separated form.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
