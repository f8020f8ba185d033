package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/book"
	"github.com/MKhiriev/go-contact-keeper/internal/command"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/tui"
	"github.com/MKhiriev/go-contact-keeper/internal/workers"
)

type App struct {
	services   *service.ClientServices
	tui        *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, workersCfg: workersCfg, logger: logger}, nil
}

// Run dispatches on the command line: with arguments the client executes a
// single address-book command against the local store and exits, without
// arguments it opens the interactive terminal interface.
func (a *App) Run(args []string) error {
	ctx := context.Background()

	// The local address book works without a server. A failed login only
	// disables synchronization.
	var userID int64
	session, err := a.services.AuthService.EnsureSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "auth warning: %v\n", err)
	} else {
		userID = session.UserID
	}

	if len(args) > 0 {
		return a.runCommand(ctx, args, userID)
	}

	return a.runInteractive(ctx, userID)
}

// runCommand is the one-shot mode: load the book, execute the parsed command,
// persist mutations, print the result.
func (a *App) runCommand(ctx context.Context, args []string, userID int64) error {
	persons, err := a.services.PersonService.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	cmd, err := command.Parse(args)
	if err != nil {
		return err
	}

	b := book.Load(persons)
	result, err := cmd.Execute(b)
	if err != nil {
		return err
	}

	if result.Mutated {
		if err := a.services.PersonService.PersistBook(ctx, persons, b.Persons()); err != nil {
			return fmt.Errorf("persist contacts: %w", err)
		}
		if userID > 0 {
			if err := a.services.SyncService.FullSync(ctx, userID); err != nil {
				fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
			}
		}
	}

	fmt.Println(result.Message)
	return nil
}

func (a *App) runInteractive(ctx context.Context, userID int64) error {
	if userID > 0 {
		if err := a.services.SyncService.FullSync(ctx, userID); err != nil {
			fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
		}

		syncWorkers := workers.NewWorkers(&syncWorker{
			ctx:      ctx,
			job:      a.services.SyncJob,
			userID:   userID,
			interval: a.workersCfg.SyncInterval,
		})
		syncWorkers.Run()
		defer a.services.SyncJob.Stop()
	}

	logout, err := a.tui.MainLoop(ctx, userID)
	if err != nil {
		return err
	}
	if logout {
		return a.services.AuthService.Logout(ctx)
	}

	return nil
}

// syncWorker adapts the background sync job to the workers contract.
type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	userID   int64
	interval time.Duration
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.userID, w.interval)
}
