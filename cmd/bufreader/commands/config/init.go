package config

import (
	"fmt"
	"os"

	"github.com/marmos91/bufreader/internal/cli/prompt"
	"github.com/marmos91/bufreader/pkg/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default bufreader configuration.

By default, the configuration file is created at $XDG_CONFIG_HOME/bufreader/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  bufreader config init

  # Force overwrite existing config
  bufreader config init --force --config ./bufreader.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			exists := config.DefaultConfigExists()
			if configPath != "" {
				_, err := os.Stat(configPath)
				exists = err == nil
			}

			overwrite := force
			if exists {
				displayPath := configPath
				if displayPath == "" {
					displayPath = config.GetDefaultConfigPath()
				}
				ok, err := prompt.ConfirmOverwrite(displayPath, force)
				if err != nil {
					return err
				}
				overwrite = ok
			}

			var err error
			if configPath != "" {
				err = config.InitConfigToPath(configPath, overwrite)
			} else {
				configPath, err = config.InitConfig(overwrite)
			}
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing config file")
	return cmd
}
