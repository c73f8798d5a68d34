// Package tui is the interactive terminal front end of the console.
package tui

import (
	"io"
	"log/slog"

	"dws-console/internal/console"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	NoColor bool
	Logger  *slog.Logger
}

func Run(c *console.Console, opts Options) error {
	applyColorProfilePreference(opts.NoColor)
	applyThemePreference()
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := newAppModel(c, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
