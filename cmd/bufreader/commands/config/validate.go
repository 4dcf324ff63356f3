package config

import (
	"fmt"

	"github.com/marmos91/bufreader/pkg/config"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the bufreader configuration file.

Checks for syntax errors, unknown encodings, and invalid values.

Examples:
  bufreader config validate --config ./bufreader.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			displayPath := configPath
			if displayPath == "" {
				displayPath = config.GetDefaultConfigPath()
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Configuration file: %s\n", displayPath)
			_, _ = fmt.Fprintln(out, "Validation: OK")
			_, _ = fmt.Fprintf(out, "\nConfiguration summary:\n")
			_, _ = fmt.Fprintf(out, "  Log level:       %s\n", cfg.Logging.Level)
			_, _ = fmt.Fprintf(out, "  Max input size:  %s\n", cfg.Input.MaxSize)
			_, _ = fmt.Fprintf(out, "  Encoding:        %s\n", cfg.Input.Encoding)
			_, _ = fmt.Fprintf(out, "  Output format:   %s\n", cfg.Output.Format)
			return nil
		},
	}
}
