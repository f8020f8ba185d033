// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalPersonsTable = `
		CREATE TABLE IF NOT EXISTS persons (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			client_side_id TEXT    NOT NULL UNIQUE,
			name           TEXT    NOT NULL,
			phone          TEXT    NOT NULL DEFAULT '',
			email          TEXT    NOT NULL DEFAULT '',
			address        TEXT    NOT NULL DEFAULT '',
			tags           TEXT    NOT NULL DEFAULT '',
			notes          TEXT    NOT NULL DEFAULT '',
			income         INTEGER NOT NULL DEFAULT 0,
			age            INTEGER NOT NULL DEFAULT 0,
			created_at     TIMESTAMP,
			updated_at     TIMESTAMP,
			deleted        INTEGER NOT NULL DEFAULT 0
		);`

	createLocalSessionsTable = `
		CREATE TABLE IF NOT EXISTS sessions (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			user_id  INTEGER NOT NULL,
			token    TEXT    NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);`

	saveLocalPerson = `
		INSERT INTO persons (
			client_side_id,
			name,
			phone,
			email,
			address,
			tags,
			notes,
			income,
			age,
			created_at,
			updated_at,
			deleted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (client_side_id) DO UPDATE SET
			name       = excluded.name,
			phone      = excluded.phone,
			email      = excluded.email,
			address    = excluded.address,
			tags       = excluded.tags,
			notes      = excluded.notes,
			income     = excluded.income,
			age        = excluded.age,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted;`

	getAllLocalPersons = `
		SELECT
			id,
			client_side_id,
			name,
			phone,
			email,
			address,
			tags,
			notes,
			income,
			age,
			created_at,
			updated_at,
			deleted
		FROM persons
		WHERE deleted = 0
		ORDER BY id;`

	getAllLocalPersonsWithDeleted = `
		SELECT
			id,
			client_side_id,
			name,
			phone,
			email,
			address,
			tags,
			notes,
			income,
			age,
			created_at,
			updated_at,
			deleted
		FROM persons
		ORDER BY id;`

	deleteLocalPerson = `
		UPDATE persons SET
			deleted    = 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE client_side_id = ?;`

	saveLocalSession = `
		INSERT INTO sessions (id, user_id, token, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getLocalSession = `
		SELECT user_id, token, saved_at
		FROM sessions
		WHERE id = 1;`

	deleteLocalSession = `DELETE FROM sessions WHERE id = 1;`
)
