package models

import "time"

// Person represents a single address-book contact.
// It is the primary persistence model for all contact data.
// The confidential part of a record is limited to free-text notes;
// everything else is ordinary directory information.
type Person struct {
	// ID is the unique identifier of the record in the server database.
	ID int64 `json:"id,omitempty"`

	// UserID is the owner of this contact.
	UserID int64 `json:"user_id,omitempty"`

	// ClientSideID is the stable identifier assigned by the client that
	// created the record. It survives synchronization and is the key used
	// to match local and remote copies of the same contact.
	ClientSideID string `json:"client_side_id"`

	// Name is the contact's full display name. Lookups by name are exact
	// and case-sensitive.
	Name string `json:"name"`

	// Phone is the contact's phone number stored as entered.
	Phone string `json:"phone"`

	// Email is the contact's e-mail address.
	Email string `json:"email"`

	// Address is the contact's postal address as a single line.
	Address string `json:"address"`

	// Tags is an optional set of labels used to group contacts.
	Tags []string `json:"tags,omitempty"`

	// Notes contains optional free-text notes about the contact.
	// The content is opaque: it is stored and returned verbatim.
	Notes Notes `json:"notes"`

	// Income is the contact's declared yearly income in whole currency
	// units. Zero means "not recorded".
	Income int64 `json:"income,omitempty"`

	// Age is the contact's age in years. Zero means "not recorded".
	Age int `json:"age,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last modification. Synchronization
	// resolves conflicts by comparing this field (last write wins).
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Deleted marks a soft-deleted record. Soft-deleted contacts are kept
	// so that deletions propagate to other devices during sync.
	Deleted bool `json:"deleted,omitempty"`
}

// TableName returns the name of the database table
// associated with the Person model.
func (p *Person) TableName() string {
	return "persons"
}

// WithNotes returns a copy of the person with the notes field replaced and
// every other field untouched. The receiver is not modified.
func (p Person) WithNotes(notes Notes) Person {
	p.Notes = notes
	return p
}
