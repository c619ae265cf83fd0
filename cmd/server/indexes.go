package main

import (
	"alcyxob/fitvideo/internal/repository/mongo"
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the indexes of every collection and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logCloser, err := bootstrap()
			if err != nil {
				return err
			}
			defer logCloser.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			manager := mongo.NewConnectionManager(connectionOptions(cfg.Database))
			db, err := manager.Connect(ctx)
			if err != nil {
				return err
			}
			defer manager.Close(context.Background())

			if err := mongo.EnsureIndexes(ctx, db); err != nil {
				return err
			}
			log.Info().Str("database", cfg.Database.Name).Msg("Indexes ensured")
			return nil
		},
	}
}
