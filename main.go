package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagConfig  string
	flagRoot    string
	flagVerbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "releasever",
	Short: "Manage the release version across the project manifests",
	Long: `releasever computes semantic version bumps and writes a release version
into the project's manifest files (the core crate manifest and the host and
ui package manifests) by replacing each file's version line in place.

Every manifest is verified before the first one is written: if any version
line is missing or ambiguous, no file is modified.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flagVerbose {
			return nil
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Usage()
		return fmt.Errorf("a subcommand is required")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML file defining the manifest targets (default: built-in set)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", ".", "Base directory for relative manifest paths")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(nextCmd, setCmd, currentCmd, bumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
