package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func newTestLocalPersonRepo(t *testing.T) (*localPersonRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &localPersonRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestLocalSavePersons_Single(t *testing.T) {
	repo, mock, db := newTestLocalPersonRepo(t)
	defer db.Close()

	now := time.Now()
	person := models.Person{
		ClientSideID: "csid-1",
		Name:         "John Doe",
		Notes:        models.NewNotes("Prefers email contact"),
		UpdatedAt:    &now,
	}

	mock.ExpectExec("INSERT INTO persons").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SavePersons(context.Background(), person); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalSavePersons_BatchUsesTransaction(t *testing.T) {
	repo, mock, db := newTestLocalPersonRepo(t)
	defer db.Close()

	now := time.Now()
	first := models.Person{ClientSideID: "csid-1", Name: "John Doe", UpdatedAt: &now}
	second := models.Person{ClientSideID: "csid-2", Name: "Jane Roe", UpdatedAt: &now}

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO persons").
		ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO persons").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.SavePersons(context.Background(), first, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLocalSavePersons_Empty(t *testing.T) {
	repo, _, db := newTestLocalPersonRepo(t)
	defer db.Close()

	if err := repo.SavePersons(context.Background()); err != nil {
		t.Fatalf("expected nil for empty batch, got %v", err)
	}
}

func TestLocalGetAllPersons(t *testing.T) {
	repo, mock, db := newTestLocalPersonRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "client_side_id", "name", "phone", "email", "address",
		"tags", "notes", "income", "age", "created_at", "updated_at", "deleted",
	}).AddRow(1, "csid-1", "John Doe", "555-0100", "", "", "friend", "Prefers email contact", 0, 0, now, now, false)

	mock.ExpectQuery("SELECT (.+) FROM persons").
		WillReturnRows(rows)

	persons, err := repo.GetAllPersons(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(persons) != 1 {
		t.Fatalf("expected 1 person, got %d", len(persons))
	}
	if persons[0].Notes.Text != "Prefers email contact" {
		t.Errorf("expected notes to round-trip, got %q", persons[0].Notes.Text)
	}
	if len(persons[0].Tags) != 1 || persons[0].Tags[0] != "friend" {
		t.Errorf("expected tags to be restored, got %v", persons[0].Tags)
	}
}

func TestLocalDeletePerson_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalPersonRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE persons").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePerson(context.Background(), "ghost")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	l := logger.NewLogger("test")
	repo := &sessionRepository{db: &DB{DB: db, logger: l}, logger: l}

	now := time.Now()
	session := models.Session{UserID: 42, Token: "jwt-token", SavedAt: now}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.UserID, session.Token, session.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "token", "saved_at"}).
			AddRow(session.UserID, session.Token, now))

	got, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "jwt-token" {
		t.Errorf("expected token to round-trip, got %q", got.Token)
	}
}

func TestSessionRepository_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	l := logger.NewLogger("test")
	repo := &sessionRepository{db: &DB{DB: db, logger: l}, logger: l}

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "token", "saved_at"}))

	_, getErr := repo.GetSession(context.Background())
	if !errors.Is(getErr, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", getErr)
	}
}
