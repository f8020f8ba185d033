// Package command implements the address-book command layer: a prefix-based
// argument parser and the commands it produces. Commands execute against an
// in-memory [book.Book]; persistence of the mutated book is the caller's
// concern.
package command

import (
	"fmt"
)

// Result is the outcome of a successfully executed command.
type Result struct {
	// Message is the user-facing feedback line.
	Message string

	// Mutated reports whether the command changed the book. The client
	// runtime uses it to decide whether the book must be written back to
	// the local store.
	Mutated bool
}

// Command is a single parsed address-book operation.
type Command interface {
	// Execute runs the command against the given book and returns the
	// user-facing result. Commands that modify contacts mutate the book
	// in place.
	Execute(b Book) (Result, error)
}

// PersonNotFoundError is returned when a command targets a name that is not
// present in the book. Its message is shown to the user verbatim.
type PersonNotFoundError struct {
	Name string
}

func (e *PersonNotFoundError) Error() string {
	return fmt.Sprintf("No person found with name: %s", e.Name)
}
