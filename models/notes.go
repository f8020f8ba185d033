package models

// Notes represents an optional textual annotation attached to a Person.
// The text has no internal structure: whatever the user typed in is what
// comes back out.
type Notes struct {
	// Text contains the note text.
	Text string `json:"text"`
}

// NewNotes wraps the given text in a Notes value.
func NewNotes(text string) Notes {
	return Notes{Text: text}
}

// EmptyNotes returns a Notes value with no content. Used when a contact is
// created without notes and when existing notes are deleted.
func EmptyNotes() Notes {
	return Notes{}
}

// IsEmpty reports whether the notes hold no text.
func (n Notes) IsEmpty() bool {
	return n.Text == ""
}

// String returns the raw note text. It implements the fmt.Stringer interface.
func (n Notes) String() string {
	return n.Text
}
