package command

import (
	"github.com/MKhiriev/go-contact-keeper/models"
)

// Book is the slice of the in-memory address book the command layer needs.
// [book.Book] satisfies it; tests substitute lightweight fakes.
type Book interface {
	// FindByName scans for a contact with exactly the given name.
	FindByName(name string) (models.Person, bool)

	// Add appends a new contact.
	Add(person models.Person) error

	// SetPerson replaces the contact named target.Name with edited.
	SetPerson(target, edited models.Person) error

	// Remove deletes the contact with the given name and returns it.
	Remove(name string) (models.Person, error)

	// Persons returns a copy of the contact list in book order.
	Persons() []models.Person

	// Clear removes every contact.
	Clear()
}
