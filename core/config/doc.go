// Package config provides configuration management for the unit converter.
//
// It utilizes Viper for loading configuration from struct-tag defaults, an optional
// config.yaml, a .env file and environment variables.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP bind address, CORS origins, rate limit, body limit
//   - Log: Logging level and format
//   - Metrics: Prometheus endpoint toggle and path
//   - Storage: S3/MinIO credentials and bucket used by `catalog publish`
//
// Environment variables map onto nested keys with underscores, e.g.
// SERVER_PORT, LOG_LEVEL, STORAGE_BUCKET.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
