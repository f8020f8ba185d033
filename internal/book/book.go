// Package book holds the in-memory address book the command layer operates
// on. The book is a plain ordered list of contacts: commands run
// single-threaded against a snapshot, and the client runtime persists the
// result afterwards.
package book

import (
	"errors"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// Sentinel errors returned by Book operations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPersonNotFound is returned when a lookup or replacement targets a
	// name that is not present in the book.
	ErrPersonNotFound = errors.New("person not found in address book")

	// ErrDuplicatePerson is returned when adding a contact whose name is
	// already present. Names are the lookup key, so they must be unique.
	ErrDuplicatePerson = errors.New("person already exists in address book")
)

// Book is an ordered in-memory list of contacts.
//
// All lookups are linear scans by exact, case-sensitive name. The type has
// no internal locking: a Book instance belongs to a single command execution.
type Book struct {
	persons []models.Person
}

// New returns an empty address book.
func New() *Book {
	return &Book{}
}

// Load returns a book populated with the given contacts, preserving order.
// The slice is copied; the caller keeps ownership of its own slice.
func Load(persons []models.Person) *Book {
	b := &Book{persons: make([]models.Person, len(persons))}
	copy(b.persons, persons)
	return b
}

// FindByName scans the book for a contact with exactly the given name.
// The second return value reports whether a contact was found.
func (b *Book) FindByName(name string) (models.Person, bool) {
	for _, p := range b.persons {
		if p.Name == name {
			return p, true
		}
	}
	return models.Person{}, false
}

// Add appends a new contact to the end of the book.
// Returns [ErrDuplicatePerson] if a contact with the same name exists.
func (b *Book) Add(person models.Person) error {
	if _, ok := b.FindByName(person.Name); ok {
		return ErrDuplicatePerson
	}

	b.persons = append(b.persons, person)
	return nil
}

// SetPerson replaces the contact named target.Name with edited, keeping the
// contact's position in the list. The replacement is whole-record: callers
// construct the edited person themselves (see [models.Person.WithNotes]).
//
// Returns [ErrPersonNotFound] if no contact carries the target name.
func (b *Book) SetPerson(target, edited models.Person) error {
	for i, p := range b.persons {
		if p.Name == target.Name {
			b.persons[i] = edited
			return nil
		}
	}
	return ErrPersonNotFound
}

// Remove deletes the contact with exactly the given name and returns it.
// Returns [ErrPersonNotFound] if no such contact exists.
func (b *Book) Remove(name string) (models.Person, error) {
	for i, p := range b.persons {
		if p.Name == name {
			b.persons = append(b.persons[:i], b.persons[i+1:]...)
			return p, nil
		}
	}
	return models.Person{}, ErrPersonNotFound
}

// Persons returns a copy of the contact list in book order.
func (b *Book) Persons() []models.Person {
	out := make([]models.Person, len(b.persons))
	copy(out, b.persons)
	return out
}

// Len returns the number of contacts in the book.
func (b *Book) Len() int {
	return len(b.persons)
}

// Clear removes every contact from the book.
func (b *Book) Clear() {
	b.persons = nil
}
