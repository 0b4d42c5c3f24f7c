// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Config prints the resolved parser configuration as YAML after merging
defaults, the config file, and PDF2X_* environment variables. The
credential is redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := parserConfig()
		if cfg.APIKey != "" {
			cfg.APIKey = "<redacted>"
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
