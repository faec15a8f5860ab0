package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pyflags/internal/history"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of snapshots to list (0 for all)")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved argument snapshots",
	RunE: func(cmd *cobra.Command, argv []string) error {
		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		hist, err := history.NewStore(ws)
		if err != nil {
			return err
		}
		defer hist.Close()

		snaps, err := hist.List(historyLimit)
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Println("No snapshots yet. Saving from the form or \"pyflags set\" records one.")
			return nil
		}
		for _, snap := range snaps {
			tokens := "(defaults)"
			if len(snap.Tokens) > 0 {
				tokens = strings.Join(snap.Tokens, " ")
			}
			fmt.Printf("%s  %s  %s\n",
				snap.ID[:8],
				snap.SavedAt.Local().Format(time.DateTime),
				tokens)
		}
		return nil
	},
}

var revertCmd = &cobra.Command{
	Use:   "revert <id>",
	Short: "Restore a snapshot into the settings file",
	Long: `Restores the argument list of an earlier snapshot. Accepts the short
id printed by "pyflags history". The revert itself is recorded as a new
snapshot, so it can be undone the same way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		ws, cfg, store, err := openStore()
		if err != nil {
			return err
		}
		hist, err := history.NewStore(ws)
		if err != nil {
			return err
		}
		defer hist.Close()

		snap, err := hist.Get(argv[0])
		if err != nil {
			return err
		}
		if err := persistTokens(ws, cfg, store, snap.Tokens); err != nil {
			return err
		}
		logger.Info("settings reverted",
			zap.String("snapshot", snap.ID),
			zap.Strings("tokens", snap.Tokens))
		if len(snap.Tokens) == 0 {
			fmt.Println("Restored defaults.")
		} else {
			fmt.Println("pytest " + strings.Join(snap.Tokens, " "))
		}
		return nil
	},
}
