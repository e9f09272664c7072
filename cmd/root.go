// Package cmd holds the portfolio command line.
package cmd

import (
	"fmt"

	"github.com/portfolio-simple/config"
	"github.com/portfolio-simple/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio gallery with an admin area",
	Long: `portfolio serves a public project gallery and a password protected
admin area for adding, editing and deleting projects with image uploads.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfigAndLogger is shared by the commands that touch storage
func loadConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.EnvFileLoaded {
		log.Debug(".env file not found, using system environment variables")
	}
	return cfg, log, nil
}
