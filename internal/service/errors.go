package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoPersonsProvided   = errors.New("no persons provided")
	ErrValidationNoDeleteIDsProvided = errors.New("no delete ids provided")
	ErrValidationNoUserID            = errors.New("no user ID was given")

	// client-side sentinels
	ErrNoClientCredentials = errors.New("no client credentials configured")
	ErrRegisterOnServer    = errors.New("registration on server failed")
	ErrLoginOnServer       = errors.New("login on server failed")
	ErrAccessDenied        = errors.New("access to different user data denied")
)
