package command

import (
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// NotesMode selects what a [NotesCommand] does with the target's notes.
type NotesMode int

const (
	// NotesView displays the notes of the specified person.
	NotesView NotesMode = iota

	// NotesAdd adds or replaces the notes of the specified person.
	NotesAdd

	// NotesDelete removes the notes of the specified person.
	NotesDelete
)

// User-facing message templates for the notes command.
const (
	MessageViewNotesSuccess   = "Notes for %s: %s"
	MessageAddNotesSuccess    = "Added notes for %s: %s"
	MessageDeleteNotesSuccess = "Deleted notes for %s"

	NotesUsage = "notes: Views, adds, or deletes the notes of the person identified by their name.\n" +
		"View: notes view/NAME\n" +
		"Add: notes add/NAME notes/NOTES\n" +
		"Delete: notes delete/NAME\n" +
		"Example: notes add/John Doe notes/Prefers email contact"
)

// NotesCommand views, adds, or deletes the free-text notes of a person
// identified by exact name.
type NotesCommand struct {
	// TargetName is the exact name of the person to operate on.
	TargetName string

	// Mode selects view, add, or delete.
	Mode NotesMode

	// NewNotes carries the replacement notes. Only meaningful in
	// [NotesAdd] mode.
	NewNotes models.Notes
}

// Execute implements [Command].
//
// The person is located by a linear scan over the book. In add and delete
// modes the matched record is replaced wholesale by a copy with only the
// notes field changed; every other field is untouched. Deleting notes a
// person does not have is not an error.
func (c *NotesCommand) Execute(b Book) (Result, error) {
	person, ok := b.FindByName(c.TargetName)
	if !ok {
		return Result{}, &PersonNotFoundError{Name: c.TargetName}
	}

	switch c.Mode {
	case NotesView:
		return Result{
			Message: fmt.Sprintf(MessageViewNotesSuccess, person.Name, person.Notes),
		}, nil

	case NotesDelete:
		if err := b.SetPerson(person, person.WithNotes(models.EmptyNotes())); err != nil {
			return Result{}, err
		}
		return Result{
			Message: fmt.Sprintf(MessageDeleteNotesSuccess, person.Name),
			Mutated: true,
		}, nil

	case NotesAdd:
		if err := b.SetPerson(person, person.WithNotes(c.NewNotes)); err != nil {
			return Result{}, err
		}
		return Result{
			Message: fmt.Sprintf(MessageAddNotesSuccess, person.Name, c.NewNotes),
			Mutated: true,
		}, nil

	default:
		return Result{}, fmt.Errorf("unknown notes mode: %d", c.Mode)
	}
}
