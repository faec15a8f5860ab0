package main

import (
	"context"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pyflags/cmd/pyflags/ui"
	"pyflags/internal/args"
	"pyflags/internal/settings"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive settings form",
	Long: `Opens the form over the persisted argument list. Toggles flip with
space, selectors cycle with the arrow keys, "s" saves. While the form is
open, external changes to the settings file are picked up automatically.`,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runEdit()
	},
}

func runEdit() error {
	ws, cfg, store, err := openStore()
	if err != nil {
		return err
	}

	save := func(c args.Configuration) error {
		return persistTokens(ws, cfg, store, args.Encode(c))
	}

	model := ui.NewFormModel(
		args.Decode(store.Args()),
		args.ProcessCountOptions(runtime.NumCPU()),
		save,
	).WithStyles(ui.NewStyles(ui.ThemeFor(cfg.Theme)))
	program := tea.NewProgram(model, tea.WithAltScreen())

	watcher, err := settings.NewWatcher(store, logger, func(tokens []string) {
		program.Send(ui.SettingsReloadedMsg{Tokens: tokens})
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		if err := watcher.Start(gctx); err != nil {
			program.Quit()
			return err
		}
		<-gctx.Done()
		watcher.Stop()
		return nil
	})
	return g.Wait()
}
