package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/perusahaan/pkg/app/screens"
	"github.com/kerbaras/perusahaan/pkg/services"
)

type App struct {
	controllers *services.Controllers
	timeout     time.Duration
	logger      *slog.Logger
}

func NewApp(controllers *services.Controllers, timeout time.Duration, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{controllers: controllers, timeout: timeout, logger: logger}
}

// Model returns the root screen, starting at the menu.
func (a *App) Model() *screens.RootScreen {
	return screens.NewRootScreen(screens.NewModules(a.controllers, a.timeout))
}

func (a *App) Run() error {
	a.logger.Info("starting tui")
	p := tea.NewProgram(a.Model(), tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		a.logger.Error("tui exited", slog.Any("err", err))
	}
	return err
}
