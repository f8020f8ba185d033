package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NotesView(t *testing.T) {
	cmd, err := Parse([]string{"notes", "view/John", "Doe"})
	require.NoError(t, err)

	notes, ok := cmd.(*NotesCommand)
	require.True(t, ok)
	assert.Equal(t, "John Doe", notes.TargetName)
	assert.Equal(t, NotesView, notes.Mode)
}

func TestParse_NotesAdd(t *testing.T) {
	cmd, err := Parse([]string{"notes", "add/John", "Doe", "notes/Prefers", "email", "contact"})
	require.NoError(t, err)

	notes, ok := cmd.(*NotesCommand)
	require.True(t, ok)
	assert.Equal(t, "John Doe", notes.TargetName)
	assert.Equal(t, NotesAdd, notes.Mode)
	assert.Equal(t, "Prefers email contact", notes.NewNotes.Text)
}

func TestParse_NotesDelete(t *testing.T) {
	cmd, err := Parse([]string{"notes", "delete/Jane", "Roe"})
	require.NoError(t, err)

	notes, ok := cmd.(*NotesCommand)
	require.True(t, ok)
	assert.Equal(t, "Jane Roe", notes.TargetName)
	assert.Equal(t, NotesDelete, notes.Mode)
}

func TestParse_NotesInvalidSyntax(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no mode prefix", args: []string{"notes", "John", "Doe"}},
		{name: "two mode prefixes", args: []string{"notes", "view/John", "delete/Jane"}},
		{name: "add without notes prefix", args: []string{"notes", "add/John", "Doe"}},
		{name: "view with empty name", args: []string{"notes", "view/"}},
		{name: "delete with empty name", args: []string{"notes", "delete/"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.ErrorIs(t, err, ErrInvalidSyntax)
			assert.Contains(t, err.Error(), "notes:", "error carries the usage message")
		})
	}
}

func TestParse_NotesAddEmptyNotesAllowed(t *testing.T) {
	// "notes/" with no text is a present-but-empty field, same as clearing.
	cmd, err := Parse([]string{"notes", "add/John", "Doe", "notes/"})
	require.NoError(t, err)

	notes := cmd.(*NotesCommand)
	assert.True(t, notes.NewNotes.IsEmpty())
}

func TestParse_AddPerson(t *testing.T) {
	cmd, err := Parse([]string{
		"add",
		"name/John", "Doe",
		"phone/555-0100",
		"email/john@example.com",
		"address/10", "Downing", "Street",
		"tag/friend", "tag/colleague",
		"income/42000",
		"age/34",
		"notes/Met", "at", "the", "conference",
	})
	require.NoError(t, err)

	add, ok := cmd.(*AddPersonCommand)
	require.True(t, ok)
	assert.Equal(t, "John Doe", add.Person.Name)
	assert.Equal(t, "555-0100", add.Person.Phone)
	assert.Equal(t, "john@example.com", add.Person.Email)
	assert.Equal(t, "10 Downing Street", add.Person.Address)
	assert.Equal(t, []string{"friend", "colleague"}, add.Person.Tags)
	assert.Equal(t, int64(42000), add.Person.Income)
	assert.Equal(t, 34, add.Person.Age)
	assert.Equal(t, "Met at the conference", add.Person.Notes.Text)
}

func TestParse_AddPersonInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing name", args: []string{"add", "phone/555-0100"}},
		{name: "empty name", args: []string{"add", "name/"}},
		{name: "negative income", args: []string{"add", "name/John", "income/-5"}},
		{name: "non-numeric age", args: []string{"add", "name/John", "age/old"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			assert.ErrorIs(t, err, ErrInvalidSyntax)
		})
	}
}

func TestParse_BareNameCommands(t *testing.T) {
	cmd, err := Parse([]string{"find", "John", "Doe"})
	require.NoError(t, err)
	assert.Equal(t, &FindCommand{TargetName: "John Doe"}, cmd)

	cmd, err = Parse([]string{"delete", "Jane", "Roe"})
	require.NoError(t, err)
	assert.Equal(t, &DeletePersonCommand{TargetName: "Jane Roe"}, cmd)

	_, err = Parse([]string{"find"})
	assert.ErrorIs(t, err, ErrInvalidSyntax)
}

func TestParse_ListAndClear(t *testing.T) {
	cmd, err := Parse([]string{"list"})
	require.NoError(t, err)
	assert.IsType(t, &ListCommand{}, cmd)

	cmd, err = Parse([]string{"clear"})
	require.NoError(t, err)
	assert.IsType(t, &ClearCommand{}, cmd)
}

func TestParse_UnknownAndEmpty(t *testing.T) {
	_, err := Parse([]string{"frobnicate"})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = Parse(nil)
	assert.ErrorIs(t, err, ErrInvalidSyntax)
}

func TestScanPrefixes_TokensBeforeFirstPrefixIgnored(t *testing.T) {
	fields := scanPrefixes([]string{"stray", "view/John", "Doe"}, PrefixView)

	v, ok := fields.first(PrefixView)
	require.True(t, ok)
	assert.Equal(t, "John Doe", v)
}

func TestScanPrefixes_RepeatedPrefixKeepsAll(t *testing.T) {
	fields := scanPrefixes([]string{"tag/friend", "tag/colleague"}, PrefixTag)
	assert.Equal(t, []string{"friend", "colleague"}, fields.all(PrefixTag))
}
