package main

import (
	"alcyxob/fitvideo/internal/repository/mongo"
	"alcyxob/fitvideo/internal/seed"
	"alcyxob/fitvideo/internal/storage"
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		file  string
		s3Key string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load quotes and videos from a JSON bundle",
		Long:  `Loads a {"quotes": [...], "videos": [...]} bundle from a local file or from the configured S3 bucket. Existing videos are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (s3Key == "") {
				return errors.New("exactly one of --file or --s3-key is required")
			}

			cfg, logCloser, err := bootstrap()
			if err != nil {
				return err
			}
			defer logCloser.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			var source storage.ObjectSource
			key := s3Key
			if file != "" {
				source = storage.NewLocalSource(filepath.Dir(file))
				key = filepath.Base(file)
			} else if source, err = storage.NewS3Source(ctx, cfg.S3); err != nil {
				return err
			}

			manager := mongo.NewConnectionManager(connectionOptions(cfg.Database))
			db, err := manager.Connect(ctx)
			if err != nil {
				return err
			}
			defer manager.Close(context.Background())

			seeder := seed.NewSeeder(source, mongo.NewMongoQuoteRepository(db), mongo.NewMongoVideoRepository(db))
			_, err = seeder.Run(ctx, key)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path of a local bundle file")
	cmd.Flags().StringVar(&s3Key, "s3-key", "", "Object key of a bundle in the configured S3 bucket")
	return cmd
}
