// Package ui is the bubbletea terminal client.
package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
)

type AppConfig struct {
	Version string
	// ExportDir receives calendar .ics exports.
	ExportDir string
	Logger    *slog.Logger
}

type App struct {
	cfg     AppConfig
	session *app.Session
}

func NewApp(cfg AppConfig, session *app.Session) *App {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &App{cfg: cfg, session: session}
}

func (a *App) Run(ctx context.Context) error {
	m := newModel(ctx, a.cfg, a.session)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	a.cfg.Logger.Info("terminal client started", "version", a.cfg.Version)
	_, err := p.Run()
	a.cfg.Logger.Info("terminal client stopped")
	return err
}
