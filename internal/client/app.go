package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/service"
	"github.com/dkrylov/animereview/internal/tui"
	"github.com/dkrylov/animereview/internal/workers"
)

// App composes the wired dependencies into the interactive client
// lifecycle: restore or open a session, then browse until quit or
// logout.
type App struct {
	services *service.Services
	tui      *tui.TUI
	janitor  *workers.CacheJanitor
	cfg      config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, janitor *workers.CacheJanitor, cfg config.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || janitor == nil {
		return nil, fmt.Errorf("client app: nil dependency")
	}

	return &App{
		services: services,
		tui:      ui,
		janitor:  janitor,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run blocks until the user quits. A logout returns to the auth flow
// instead of exiting.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.janitor.Start(ctx, a.cfg.PruneInterval)
	defer a.janitor.Stop()

	for {
		_, err := a.services.AuthService.RestoreSession(ctx)
		if err != nil && !errors.Is(err, service.ErrNoStoredSession) {
			return fmt.Errorf("restore session: %w", err)
		}

		if err != nil {
			if flowErr := a.tui.AuthFlow(ctx); flowErr != nil {
				if errors.Is(flowErr, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("auth flow: %w", flowErr)
			}
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("func", "*App.Run").Msg("user logged out, returning to auth flow")
	}
}
