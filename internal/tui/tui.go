// Package tui implements the interactive terminal interface of the client.
//
// The interface is a single main loop over the local address book: a contact
// list with detail, create, edit, notes, and sync actions. Authentication is
// handled outside the TUI by the client runtime.
package tui

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, userID, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
