package config

import (
	"github.com/marmos91/bufreader/internal/cli/output"
	"github.com/marmos91/bufreader/pkg/config"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var showOutput string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the effective bufreader configuration after merging the
config file, BUFREADER_* environment variables and defaults.

Examples:
  # Show as YAML
  bufreader config show

  # Show as JSON
  bufreader config show --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(showOutput)
			if err != nil {
				return err
			}

			switch format {
			case output.FormatJSON:
				return output.PrintJSON(cmd.OutOrStdout(), cfg)
			default:
				return output.PrintYAML(cmd.OutOrStdout(), cfg)
			}
		},
	}
	cmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml|json)")
	return cmd
}
