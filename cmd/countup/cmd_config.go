package main

import (
	"fmt"
	"os"

	"countup/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configForce bool

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the countup config file",
}

// configInitCmd writes the defaults
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Writes the default configuration to --config (countup.yaml by default).
An existing file is kept unless --force is given.`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
