package main

import (
	"fmt"
	"os"

	"countup/internal/config"
	"countup/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "countup",
	Short: "countup - numbers that count up when they come into view",
	Long: `countup animates decorated numeric labels such as "$49", "2.4K",
"98%" or "10K+" from zero to their value, keeping every prefix and suffix
in place while the number grows.

Run without arguments to open the landing page in your terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cmd == configInitCmd {
			// must work even when the existing file is broken
			cfg = config.DefaultConfig()
			logger = zap.NewNop()
			return nil
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		if err := logging.Initialize(cfg.Logging.Options()); err != nil {
			return fmt.Errorf("failed to initialize file logging: %w", err)
		}

		// The landing page owns the terminal; stderr logging would corrupt it.
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runPage,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")

	rootCmd.Flags().BoolVar(&watchConfig, "watch", false, "Reload the page when the config file changes")

	animateCmd.Flags().DurationVar(&animateDuration, "duration", 0, "Count-up duration (default from config)")
	animateCmd.Flags().IntVar(&animateFPS, "fps", 0, "Frames per second (default from config)")
	animateCmd.Flags().BoolVar(&animateMarkdown, "markdown", false, "Print a frame table instead of animating")
	animateCmd.Flags().IntVar(&animateSteps, "steps", 10, "Rows in the --markdown frame table")

	renderCmd.Flags().DurationVar(&renderAt, "at", 0, "Elapsed time of the frame")
	renderCmd.Flags().DurationVar(&renderDuration, "duration", 0, "Count-up duration (default from config)")

	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(animateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(sliceCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
