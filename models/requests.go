package models

// UpsertRequest carries one or more contacts to be created or updated on
// the server in a single call. Records are matched by ClientSideID.
type UpsertRequest struct {
	// UserID is the owner of the contacts. Filled in on the server from the
	// authenticated context; a mismatch with the token is rejected.
	UserID int64 `json:"user_id,omitempty"`

	// Persons contains one or more contacts to be stored.
	Persons []*Person `json:"persons"`
}

// DeletePersonRequest identifies contacts to soft-delete.
type DeletePersonRequest struct {
	// UserID is the owner of the contacts to delete.
	UserID int64 `json:"user_id,omitempty"`

	// ClientSideIDs contains the identifiers of the contacts to delete.
	ClientSideIDs []string `json:"client_side_ids"`
}

// ListRequest represents search criteria for querying contacts.
type ListRequest struct {
	// UserID filters records by owner. Required for data isolation.
	UserID int64 `json:"user_id,omitempty"`

	// ClientSideIDs narrows the result to specific contacts.
	// Empty means "all contacts of the user".
	ClientSideIDs []string `json:"client_side_ids,omitempty"`

	// Tags narrows the result to contacts carrying any of the given tags.
	Tags []string `json:"tags,omitempty"`

	// IncludeDeleted requests soft-deleted records too. Sync pulls set it
	// so deletions propagate; interactive listings leave it false.
	IncludeDeleted bool `json:"include_deleted,omitempty"`
}
