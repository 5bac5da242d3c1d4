package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/swantron/funcdemo/internal/config"
	"github.com/swantron/funcdemo/internal/log"
)

// AddCommonFlags registers the flags shared by every program
func AddCommonFlags(cmd *cobra.Command, configFile *string) {
	cmd.Flags().StringVar(configFile, "config", "", "Path to YAML config file")
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml, markdown, msgpack")
	cmd.Flags().BoolP("verbose", "v", false, "Log every step to stderr")
	cmd.Flags().Bool("log-json", false, "Write logs as JSON lines")
}

// Setup loads the configuration for cmd and builds a logger writing to its
// error stream.
func Setup(cmd *cobra.Command, configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, nil, err
	}

	logger := log.New(log.Config{
		Verbose:    cfg.Verbose,
		JSONOutput: cfg.LogJSON,
		Writer:     cmd.ErrOrStderr(),
	})
	return cfg, logger, nil
}
