// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2x CLI.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2x/internal/llamaparse"
	"github.com/pdiddy/pdf2x/internal/secrets"
	"github.com/pdiddy/pdf2x/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the process-wide logger shared by all subcommands.
var log = logrus.New()

// apiKey holds the credential resolved at startup from .env or the
// environment. An empty value is reported by the driver, not here, so
// that commands which need no credential still work.
var apiKey string

// rootCmd is the base command for the pdf2x CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2x",
	Short: "Convert PDFs through the LlamaParse cloud service",
	Long: `pdf2x submits a PDF to the hosted LlamaParse service and writes the
extracted content to a local file as Markdown, plain text, or JSON. The
heavy lifting (layout analysis, OCR, table extraction) happens in the
service; pdf2x handles validation, credentials, and output.

The service credential is read from LLAMA_CLOUD_API_KEY, either from a
.env file next to the binary or from the process environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		key, err := secrets.Load()
		if err != nil {
			return err
		}
		apiKey = key
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2x.yaml or ~/.config/pdf2x/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2x")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2x"))
		}
	}

	viper.SetDefault("parser.base_url", llamaparse.DefaultBaseURL)
	viper.SetDefault("parser.timeout", 60*time.Second)
	viper.SetDefault("parser.user_agent", "pdf2x/"+version)
	viper.SetDefault("parser.premium_mode", true)
	viper.SetDefault("parser.continuous_mode", true)
	viper.SetDefault("parser.poll_interval", 2*time.Second)
	viper.SetDefault("parser.max_retries", 5)

	viper.SetEnvPrefix("PDF2X")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}

	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// parserConfig assembles the service configuration from viper and the
// resolved credential. The driver receives this struct explicitly; it
// never consults viper or the environment itself.
func parserConfig() types.ParserConfig {
	return types.ParserConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("parser.timeout"),
			UserAgent: viper.GetString("parser.user_agent"),
		},
		BaseURL:        viper.GetString("parser.base_url"),
		APIKey:         apiKey,
		PremiumMode:    viper.GetBool("parser.premium_mode"),
		ContinuousMode: viper.GetBool("parser.continuous_mode"),
		PollInterval:   viper.GetDuration("parser.poll_interval"),
		MaxRetries:     viper.GetInt("parser.max_retries"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("conversion failed: %v", err)
		os.Exit(1)
	}
}
