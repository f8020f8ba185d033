package command

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// User-facing message templates for the person commands.
const (
	MessageAddPersonSuccess    = "New person added: %s"
	MessageDeletePersonSuccess = "Deleted person: %s"
	MessageFindSuccess         = "Found %s"
	MessageClearSuccess        = "Address book has been cleared"
	MessageListedPersons       = "%d persons listed"
)

// AddPersonCommand adds a new contact to the book.
type AddPersonCommand struct {
	Person models.Person
}

// Execute implements [Command].
func (c *AddPersonCommand) Execute(b Book) (Result, error) {
	if err := b.Add(c.Person); err != nil {
		return Result{}, err
	}
	return Result{
		Message: fmt.Sprintf(MessageAddPersonSuccess, c.Person.Name),
		Mutated: true,
	}, nil
}

// ListCommand renders every contact in book order.
type ListCommand struct{}

// Execute implements [Command].
func (c *ListCommand) Execute(b Book) (Result, error) {
	persons := b.Persons()

	var sb strings.Builder
	for _, p := range persons {
		sb.WriteString(formatPersonLine(p))
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf(MessageListedPersons, len(persons)))

	return Result{Message: sb.String()}, nil
}

// FindCommand looks up a single contact by exact name and renders it.
type FindCommand struct {
	TargetName string
}

// Execute implements [Command].
func (c *FindCommand) Execute(b Book) (Result, error) {
	person, ok := b.FindByName(c.TargetName)
	if !ok {
		return Result{}, &PersonNotFoundError{Name: c.TargetName}
	}

	return Result{
		Message: fmt.Sprintf(MessageFindSuccess, formatPersonLine(person)),
	}, nil
}

// DeletePersonCommand removes a contact by exact name.
type DeletePersonCommand struct {
	TargetName string
}

// Execute implements [Command].
func (c *DeletePersonCommand) Execute(b Book) (Result, error) {
	removed, err := b.Remove(c.TargetName)
	if err != nil {
		return Result{}, &PersonNotFoundError{Name: c.TargetName}
	}

	return Result{
		Message: fmt.Sprintf(MessageDeletePersonSuccess, removed.Name),
		Mutated: true,
	}, nil
}

// ClearCommand empties the book.
type ClearCommand struct{}

// Execute implements [Command].
func (c *ClearCommand) Execute(b Book) (Result, error) {
	b.Clear()
	return Result{Message: MessageClearSuccess, Mutated: true}, nil
}

func formatPersonLine(p models.Person) string {
	parts := []string{p.Name}
	if p.Phone != "" {
		parts = append(parts, "Phone: "+p.Phone)
	}
	if p.Email != "" {
		parts = append(parts, "Email: "+p.Email)
	}
	if p.Address != "" {
		parts = append(parts, "Address: "+p.Address)
	}
	if len(p.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(p.Tags, ", "))
	}
	if !p.Notes.IsEmpty() {
		parts = append(parts, "Notes: "+p.Notes.String())
	}
	return strings.Join(parts, "; ")
}
