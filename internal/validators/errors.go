package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidClientSideID = errors.New("invalid client side id")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidIncome       = errors.New("income cannot be negative")
	ErrInvalidAge          = errors.New("age cannot be negative")
	ErrEmptyIDs            = errors.New("IDs list cannot be empty")
	ErrEmptyPersons        = errors.New("persons list cannot be empty")
)
