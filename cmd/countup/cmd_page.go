package main

import (
	"context"
	"fmt"
	"time"

	"countup/cmd/countup/ui"
	"countup/internal/config"
	"countup/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var watchConfig bool

// reloadCoalesce collapses editor save bursts into one page restart.
const reloadCoalesce = 300 * time.Millisecond

// runPage opens the landing page
func runPage(cmd *cobra.Command, args []string) error {
	logging.Boot("opening landing page (config %s, watch=%v)", configPath, watchConfig)

	p := tea.NewProgram(
		ui.NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if watchConfig {
		ctx, cancel := context.WithCancel(commandContext(cmd))
		defer cancel()

		stop, err := watchPageConfig(ctx, configPath, p.Send)
		if err != nil {
			return err
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("landing page failed: %w", err)
	}
	return nil
}

// watchPageConfig forwards validated config changes to send. The returned
// func stops watching.
func watchPageConfig(ctx context.Context, path string, send func(tea.Msg)) (func(), error) {
	debouncer := ui.NewDebouncer(reloadCoalesce)
	w, err := config.NewWatcher(path, func(c *config.Config) {
		debouncer.Debounce(func() {
			send(ui.ConfigReloadedMsg{Config: c})
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}
	return func() {
		w.Stop()
		debouncer.Cancel()
	}, nil
}
