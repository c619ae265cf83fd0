package main

import (
	"alcyxob/fitvideo/internal/config"
	"alcyxob/fitvideo/internal/logging"
	"alcyxob/fitvideo/internal/repository/mongo"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const appName = "fitvideo"

var (
	version = "dev"

	configPath string
)

// @title Fitness Video API
// @version 1.0
// @description API for users, workout sessions, the exercise video catalog, likes and quotes.
// @host localhost:8080
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Fitness video tracking API",
		Long:          `fitvideo serves the fitness video API backed by MongoDB and manages its indexes and reference data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Directory holding config.yaml and .env")

	rootCmd.AddCommand(newServeCmd(), newIndexesCmd(), newSeedCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", appName, version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// bootstrap loads configuration and installs the global logger.
func bootstrap() (config.Config, io.Closer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logging.Setup(cfg.Log), nil
}

func connectionOptions(cfg config.DatabaseConfig) mongo.ConnectionOptions {
	return mongo.ConnectionOptions{
		URI:      cfg.URI,
		Database: cfg.Name,
		Managed:  cfg.ManagedClient,
		Timeout:  cfg.ConnectTimeout,
		AppName:  appName,
	}
}
