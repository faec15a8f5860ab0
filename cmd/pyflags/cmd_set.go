package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pyflags/internal/args"
)

var setCmd = &cobra.Command{
	Use:   "set field=value ...",
	Short: "Set one or more fields without opening the form",
	Long: `Applies field assignments to the persisted configuration. Field names
match the form: traceback, numprocesses, verbosity, capture-output,
show-locals, browser, headed, slowmo, tracing, video, delve. Selectors accept
"default" to clear; toggles accept on/off.

Example:
  pyflags set verbosity=verbose headed=on browser=chromium`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		ws, cfg, store, err := openStore()
		if err != nil {
			return err
		}

		c := args.Decode(store.Args())
		for _, assignment := range argv {
			name, value, ok := strings.Cut(assignment, "=")
			if !ok {
				return fmt.Errorf("expected field=value, got %q", assignment)
			}
			if err := c.SetField(name, value); err != nil {
				return err
			}
		}

		tokens := args.Encode(c)
		if err := persistTokens(ws, cfg, store, tokens); err != nil {
			return err
		}
		logger.Info("settings updated",
			zap.Strings("tokens", tokens),
			zap.String("path", store.Path()))
		fmt.Println("pytest " + strings.Join(tokens, " "))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset every field to its default",
	RunE: func(cmd *cobra.Command, argv []string) error {
		ws, cfg, store, err := openStore()
		if err != nil {
			return err
		}
		if err := persistTokens(ws, cfg, store, nil); err != nil {
			return err
		}
		logger.Info("settings cleared", zap.String("path", store.Path()))
		fmt.Println("All pytest arguments reset to defaults.")
		return nil
	},
}
