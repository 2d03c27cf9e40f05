package ui

import (
	"context"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/config"
)

// App owns the terminal program for one process lifetime.
type App struct {
	logger *logrus.Logger
	cfg    config.Config
}

func NewApp(logger *logrus.Logger, cfg config.Config) *App {
	return &App{logger: logger, cfg: cfg}
}

// Run blocks until the player exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	menu := NewMenu(a.logger, r, a.cfg.Board)
	program := tea.NewProgram(menu, tea.WithAltScreen())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		program.Quit()
		return nil
	})

	return g.Wait()
}
