package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldClientSideID targets the client-generated unique identifier of a contact.
	FieldClientSideID = "client_side_id"

	// FieldUserID targets the owner identifier of a contact or request.
	FieldUserID = "user_id"

	// FieldName targets the contact's display name.
	FieldName = "name"

	// FieldIncome targets the contact's yearly income field.
	FieldIncome = "income"

	// FieldAge targets the contact's age field.
	FieldAge = "age"

	// FieldClientSideIDs targets the array of client-side identifiers in bulk requests.
	FieldClientSideIDs = "client_side_ids"

	// FieldPersons targets the list of contacts in an upsert request.
	FieldPersons = "persons"
)

// PersonValidator implements the Validator interface for all contact-related
// domain models: Person, UpsertRequest, DeletePersonRequest, and ListRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type PersonValidator struct {
}

// NewPersonValidator constructs a new PersonValidator
// and returns it as the Validator interface.
func NewPersonValidator() Validator {
	return &PersonValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Person / *models.Person
//   - models.UpsertRequest / *models.UpsertRequest
//   - models.DeletePersonRequest / *models.DeletePersonRequest
//   - models.ListRequest / *models.ListRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *PersonValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Person:
		return v.validatePerson(ctx, value, fields...)
	case *models.Person:
		return v.validatePerson(ctx, *value, fields...)

	case models.UpsertRequest:
		return v.validateUpsertRequest(ctx, value, fields...)
	case *models.UpsertRequest:
		return v.validateUpsertRequest(ctx, *value, fields...)

	case models.DeletePersonRequest:
		return v.validateDeletePersonRequest(ctx, value, fields...)
	case *models.DeletePersonRequest:
		return v.validateDeletePersonRequest(ctx, *value, fields...)

	case models.ListRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListRequest:
		return v.validateListRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PersonValidator) validatePerson(_ context.Context, person models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientSideID, FieldName, FieldIncome, FieldAge}
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if person.ClientSideID == "" {
				return ErrInvalidClientSideID
			}
		case FieldUserID:
			if person.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if person.Name == "" {
				return ErrEmptyName
			}
		case FieldIncome:
			if person.Income < 0 {
				return ErrInvalidIncome
			}
		case FieldAge:
			if person.Age < 0 {
				return ErrInvalidAge
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *PersonValidator) validateUpsertRequest(ctx context.Context, request models.UpsertRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPersons}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPersons:
			if len(request.Persons) == 0 {
				return ErrEmptyPersons
			}
			for _, person := range request.Persons {
				if err := v.validatePerson(ctx, *person); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *PersonValidator) validateDeletePersonRequest(_ context.Context, request models.DeletePersonRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldClientSideIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldClientSideIDs:
			if len(request.ClientSideIDs) == 0 {
				return ErrEmptyIDs
			}
			for _, id := range request.ClientSideIDs {
				if id == "" {
					return ErrInvalidClientSideID
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *PersonValidator) validateListRequest(_ context.Context, request models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldClientSideIDs:
			for _, id := range request.ClientSideIDs {
				if id == "" {
					return ErrInvalidClientSideID
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
