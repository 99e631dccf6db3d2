package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"unit-converter/core/config"
	"unit-converter/core/loader"
	"unit-converter/core/logger"
	"unit-converter/core/metrics"
	"unit-converter/core/server"

	"unit-converter/feature/conversion"
	"unit-converter/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Unit Converter API
// @version 1.0
// @description Stateless conversion between length, weight, volume, temperature and area units.
// @host localhost:5000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the unit converter server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Metrics and Fiber App
		m := metrics.New()
		app := server.NewApp(cfg.Server, logg)

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(cfg.Metrics, m))
		mgr.Register(conversion.NewFeature(logg, m))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
