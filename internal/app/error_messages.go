// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact-keeper server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoPersonsProvided is returned when an upsert request contains an
	// empty contact list.
	MsgNoPersonsProvided = "no persons provided"

	// MsgNoDeleteIDsProvided is returned when a delete request contains an
	// empty list of client-side IDs to remove.
	MsgNoDeleteIDsProvided = "no delete ids provided"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify a contact that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgPersonNotFound is returned when a delete operation targets contacts
	// that do not exist for the current user.
	MsgPersonNotFound = "persons not found"
)
