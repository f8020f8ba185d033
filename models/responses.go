package models

// ListResponse contains the contacts matched by a [ListRequest].
type ListResponse struct {
	// Persons is the matched contact list.
	Persons []Person `json:"persons"`

	// Length is the total number of entries in Persons. Provided for
	// convenience so the client can pre-allocate or validate the response
	// without iterating the slice.
	Length int `json:"length"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	// Token is the signed JWT the client must present on every
	// authenticated request.
	Token string `json:"token"`

	// Login echoes the authenticated login for display purposes.
	Login string `json:"login"`
}
