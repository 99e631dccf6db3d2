package cmd

import (
	"fmt"
	"time"

	"unit-converter/core/config"
	"unit-converter/core/logger"
	"unit-converter/core/storage"
	"unit-converter/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd is the parent command for catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the published unit catalog",
}

// publishCmd uploads the catalog JSON files to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the unit catalog to object storage",
	Long: `Uploads <prefix>/units.json and one <prefix>/<category>.json per category
to the configured bucket, creating the bucket when it does not exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}

		publisher := catalog.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.Region, l)
		names, err := publisher.Publish(ctx)
		if err != nil {
			return fmt.Errorf("failed to publish catalog: %w", err)
		}

		l.Info("Publish complete",
			zap.Strings("objects", names),
			zap.Duration("duration", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(publishCmd)
	RootCmd.AddCommand(catalogCmd)
}
