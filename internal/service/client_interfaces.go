package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ClientAuthService defines the client-side contract for authenticating
// against the sync server with the credentials from the client configuration.
// Authentication is non-interactive so that the one-shot command mode works
// in scripts.
type ClientAuthService interface {
	// Register creates a new account on the server using the configured
	// login and password, stores the issued bearer token in a local session,
	// and returns that session. Returns an error if no credentials are
	// configured or the server call fails.
	Register(ctx context.Context, name string) (models.Session, error)

	// Login authenticates against the server using the configured login and
	// password, stores the issued bearer token in a local session, and
	// returns that session. Returns an error if no credentials are
	// configured or the server call fails.
	Login(ctx context.Context) (models.Session, error)

	// EnsureSession returns the locally stored session if one exists,
	// re-arming the server adapter with its token. When no session is
	// stored it falls back to Login. Returns an error if both fail.
	EnsureSession(ctx context.Context) (models.Session, error)

	// Logout removes the locally stored session and clears the adapter's
	// bearer token. Safe to call when no session is stored.
	Logout(ctx context.Context) error
}

// ClientPersonService defines the client-side contract for managing the
// device's copy of the address book. All operations work against the local
// database only; the sync service propagates changes to the server.
type ClientPersonService interface {
	// GetAll returns every active contact stored on the device.
	GetAll(ctx context.Context) ([]models.Person, error)

	// Create assigns a client-side UUID to the contact (unless one is
	// already set), stamps the modification time, and saves it locally.
	// Returns the saved contact.
	Create(ctx context.Context, person models.Person) (models.Person, error)

	// Update stamps the modification time and overwrites the local record
	// matched by the contact's client-side ID. Returns an error if the
	// client-side ID is empty.
	Update(ctx context.Context, person models.Person) error

	// Delete soft-deletes the local contact with the given client-side ID.
	// Returns [store.ErrPersonNotFound] if no such record exists.
	Delete(ctx context.Context, clientSideID string) error

	// PersistBook writes the outcome of an address-book command back to the
	// local store. It compares the book's contents before and after the
	// command, saves new and modified contacts with fresh identifiers and
	// timestamps, and soft-deletes contacts that the command removed.
	PersistBook(ctx context.Context, before, after []models.Person) error
}

// ClientSyncService defines the client-side contract for synchronising the
// local address book with the remote server.
type ClientSyncService interface {
	// FullSync performs a complete bidirectional synchronisation for the
	// given user: it pulls the server's records (including soft-deleted
	// ones), applies every record that is newer than the local copy, then
	// pushes the device's active contacts and deletions back to the server.
	// Conflicts are resolved by last write wins on the modification time.
	FullSync(ctx context.Context, userID int64) error
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls FullSync for the authenticated user.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
