package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pyflags/internal/config"
	"pyflags/internal/history"
	"pyflags/internal/settings"
)

var (
	// Global flags
	verbose   bool
	workspace string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pyflags",
	Short: "pyflags - terminal editor for pytest arguments",
	Long: `pyflags edits the pytest argument list persisted in your workspace
settings. It presents a form of toggles and selectors, encodes your choices
into the canonical flag sequence, and writes them back under the
"pytest.args" key in .pyflags/settings.json.

Run without arguments to open the interactive form.`,
	PersistentPreRunE: func(cmd *cobra.Command, argv []string) error {
		// The form owns the terminal; route nothing to stderr while it runs.
		if cmd.Name() == "pyflags" || cmd.Name() == "edit" {
			logger = zap.NewNop()
			return nil
		}

		level := zapcore.InfoLevel
		if ws, err := resolveWorkspace(); err == nil {
			if cfg, err := config.Load(ws); err == nil {
				if parsed, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
					level = parsed
				}
			}
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, argv []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runEdit()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", ".", "workspace directory")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(revertCmd)
	rootCmd.AddCommand(guideCmd)
}

func resolveWorkspace() (string, error) {
	abs, err := filepath.Abs(workspace)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace %q: %w", workspace, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("workspace %q: %w", workspace, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace %q is not a directory", workspace)
	}
	return abs, nil
}

// openStore loads tool config and the settings store for the workspace.
func openStore() (string, *config.Config, *settings.Store, error) {
	ws, err := resolveWorkspace()
	if err != nil {
		return "", nil, nil, err
	}
	cfg, err := config.Load(ws)
	if err != nil {
		return "", nil, nil, err
	}
	store := settings.NewStoreAt(cfg.ResolveSettingsPath(ws))
	if err := store.Load(); err != nil {
		return "", nil, nil, err
	}
	return ws, cfg, store, nil
}

// persistTokens writes the token list to the settings store and, when
// enabled, journals a snapshot and prunes old ones.
func persistTokens(ws string, cfg *config.Config, store *settings.Store, tokens []string) error {
	store.SetArgs(tokens)
	if err := store.Save(); err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return nil
	}
	hist, err := history.NewStore(ws)
	if err != nil {
		return err
	}
	defer hist.Close()
	if _, err := hist.Record(tokens); err != nil {
		return err
	}
	return hist.Prune(cfg.History.Keep)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
