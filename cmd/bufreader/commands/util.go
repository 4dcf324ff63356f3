package commands

import (
	"fmt"

	"github.com/marmos91/bufreader/internal/logger"
	"github.com/marmos91/bufreader/pkg/config"
	"github.com/spf13/cobra"
)

// loadConfig loads configuration honouring --config, --log-level and any
// extra flag bindings, then initializes the logger from it.
func loadConfig(cmd *cobra.Command, opts ...config.Option) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	opts = append(opts, config.WithFlag("logging.level", cmd.Flag("log-level")))
	cfg, err := config.Load(configPath, opts...)
	if err != nil {
		return nil, err
	}

	if err := initLogger(cfg); err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", logger.KeyConfig, configPath)
	return cfg, nil
}

// initLogger initializes the structured logger from configuration.
func initLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
