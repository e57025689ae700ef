package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrylov/animereview/internal/adapter"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/service"
	"github.com/dkrylov/animereview/internal/store"
)

// ErrUserQuit reports that the user closed the program instead of
// finishing the active flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	catalog  adapter.AnimeCatalog
	kv       store.KVStore
	logger   *logger.Logger
}

func New(services *service.Services, catalog adapter.AnimeCatalog, kv store.KVStore, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, catalog: catalog, kv: kv, logger: log}, nil
}

// AuthFlow runs the welcome/login/register program until a session is
// open. Returns ErrUserQuit when the user closes the program instead.
func (t *TUI) AuthFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "*TUI.AuthFlow").Msg("auth flow terminated with error")
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the browsing program for the authenticated user. Returns
// logout=true when the user logged out (or deleted the account) and the
// auth flow should run again.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainModel(ctx, t.services, t.catalog, t.kv)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "*TUI.MainLoop").Msg("main loop terminated with error")
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
