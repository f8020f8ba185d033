package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// Prefixes of the command argument syntax. A prefix introduces a named
// argument whose value runs until the next prefix token (names may contain
// spaces: "view/John Doe").
const (
	PrefixView   = "view/"
	PrefixAdd    = "add/"
	PrefixDelete = "delete/"
	PrefixNotes  = "notes/"

	PrefixName    = "name/"
	PrefixPhone   = "phone/"
	PrefixEmail   = "email/"
	PrefixAddress = "address/"
	PrefixTag     = "tag/"
	PrefixIncome  = "income/"
	PrefixAge     = "age/"
)

// ErrInvalidSyntax is returned (wrapped with a usage message) when command
// arguments do not match the expected prefix syntax.
var ErrInvalidSyntax = errors.New("invalid command format")

// ErrUnknownCommand is returned when the command word is not recognized.
var ErrUnknownCommand = errors.New("unknown command")

// AddPersonUsage documents the add command syntax.
const AddPersonUsage = "add: Adds a person to the address book.\n" +
	"Parameters: add name/NAME [phone/PHONE] [email/EMAIL] [address/ADDRESS] [tag/TAG]... [income/INCOME] [age/AGE] [notes/NOTES]\n" +
	"Example: add name/John Doe phone/555-0100 tag/friend"

// Parse turns raw command-line arguments into an executable [Command].
//
// The first argument is the command word; the remainder is parsed with the
// prefix syntax. Recognized commands: notes, add, list, find, delete, clear.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidSyntax)
	}

	word := args[0]
	rest := args[1:]

	switch word {
	case "notes":
		return parseNotes(rest)
	case "add":
		return parseAddPerson(rest)
	case "list":
		return &ListCommand{}, nil
	case "find":
		return parseFind(rest)
	case "delete":
		return parseDeletePerson(rest)
	case "clear":
		return &ClearCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
	}
}

// parseNotes builds a [NotesCommand] from "view/NAME", "add/NAME notes/TEXT"
// or "delete/NAME" argument lists.
func parseNotes(args []string) (Command, error) {
	fields := scanPrefixes(args, PrefixView, PrefixAdd, PrefixDelete, PrefixNotes)

	view, hasView := fields.first(PrefixView)
	add, hasAdd := fields.first(PrefixAdd)
	del, hasDelete := fields.first(PrefixDelete)

	// exactly one mode prefix must be present
	modes := 0
	for _, present := range []bool{hasView, hasAdd, hasDelete} {
		if present {
			modes++
		}
	}
	if modes != 1 {
		return nil, fmt.Errorf("%w\n%s", ErrInvalidSyntax, NotesUsage)
	}

	switch {
	case hasView:
		if view == "" {
			return nil, fmt.Errorf("%w\n%s", ErrInvalidSyntax, NotesUsage)
		}
		return &NotesCommand{TargetName: view, Mode: NotesView}, nil

	case hasDelete:
		if del == "" {
			return nil, fmt.Errorf("%w\n%s", ErrInvalidSyntax, NotesUsage)
		}
		return &NotesCommand{TargetName: del, Mode: NotesDelete}, nil

	default:
		notes, hasNotes := fields.first(PrefixNotes)
		if add == "" || !hasNotes {
			return nil, fmt.Errorf("%w\n%s", ErrInvalidSyntax, NotesUsage)
		}
		return &NotesCommand{TargetName: add, Mode: NotesAdd, NewNotes: models.NewNotes(notes)}, nil
	}
}

func parseAddPerson(args []string) (Command, error) {
	fields := scanPrefixes(args,
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixTag, PrefixIncome, PrefixAge, PrefixNotes)

	name, hasName := fields.first(PrefixName)
	if !hasName || name == "" {
		return nil, fmt.Errorf("%w\n%s", ErrInvalidSyntax, AddPersonUsage)
	}

	person := models.Person{Name: name}
	person.Phone, _ = fields.first(PrefixPhone)
	person.Email, _ = fields.first(PrefixEmail)
	person.Address, _ = fields.first(PrefixAddress)
	person.Tags = fields.all(PrefixTag)

	if raw, ok := fields.first(PrefixIncome); ok {
		income, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || income < 0 {
			return nil, fmt.Errorf("%w: income must be a non-negative integer", ErrInvalidSyntax)
		}
		person.Income = income
	}

	if raw, ok := fields.first(PrefixAge); ok {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			return nil, fmt.Errorf("%w: age must be a non-negative integer", ErrInvalidSyntax)
		}
		person.Age = age
	}

	if notes, ok := fields.first(PrefixNotes); ok {
		person.Notes = models.NewNotes(notes)
	}

	return &AddPersonCommand{Person: person}, nil
}

func parseFind(args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return nil, fmt.Errorf("%w: find NAME", ErrInvalidSyntax)
	}
	return &FindCommand{TargetName: name}, nil
}

func parseDeletePerson(args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return nil, fmt.Errorf("%w: delete NAME", ErrInvalidSyntax)
	}
	return &DeletePersonCommand{TargetName: name}, nil
}

// prefixFields holds parsed prefix arguments in encounter order.
type prefixFields struct {
	values map[string][]string
}

func (f prefixFields) first(prefix string) (string, bool) {
	vs := f.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (f prefixFields) all(prefix string) []string {
	return f.values[prefix]
}

// scanPrefixes walks the argument tokens and groups them into prefix fields.
// A token starting with a known prefix opens a new field; following tokens
// are appended to that field's value until the next prefix token. Tokens
// before the first prefix are ignored.
func scanPrefixes(args []string, prefixes ...string) prefixFields {
	fields := prefixFields{values: make(map[string][]string)}

	currentPrefix := ""
	var current []string

	flush := func() {
		if currentPrefix == "" {
			return
		}
		fields.values[currentPrefix] = append(fields.values[currentPrefix], strings.Join(current, " "))
	}

	for _, token := range args {
		matched := ""
		for _, p := range prefixes {
			if strings.HasPrefix(token, p) {
				matched = p
				break
			}
		}

		if matched == "" {
			if currentPrefix != "" {
				current = append(current, token)
			}
			continue
		}

		flush()
		currentPrefix = matched
		current = current[:0]
		if rest := strings.TrimPrefix(token, matched); rest != "" {
			current = append(current, rest)
		}
	}
	flush()

	return fields
}
