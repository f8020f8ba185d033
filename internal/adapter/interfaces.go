// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the contact-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// contact-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and returns
	// the server's auth response. Returns an error if the request fails or
	// the server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the server's auth
	// response. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// UpsertPersons sends one or more contact records to the server in a
	// single request. Records the server already holds in a newer revision
	// are skipped server-side. Requires a valid bearer token.
	UpsertPersons(ctx context.Context, req models.UpsertRequest) error

	// ListPersons retrieves the contacts matching req from the server.
	// Requires a valid bearer token. Returns an error if the request fails
	// or the response cannot be decoded.
	ListPersons(ctx context.Context, req models.ListRequest) ([]models.Person, error)

	// DeletePersons sends a soft-delete request for one or more contacts to
	// the server. Requires a valid bearer token.
	DeletePersons(ctx context.Context, req models.DeletePersonRequest) error
}
