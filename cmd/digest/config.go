package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/steveyegge/digest/internal/config"
	"github.com/steveyegge/digest/internal/debug"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML (tokens masked)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Settings()
		if outputFormat == formatJSON {
			return outputJSON(cmd.OutOrStdout(), settings)
		}

		if path := config.ConfigFileUsed(); path != "" {
			debug.PrintNormal("# config file: %s\n", path)
		}
		out, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
