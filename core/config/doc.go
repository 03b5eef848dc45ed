// Package config provides configuration management for the game catalog service.
//
// It uses Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, timeouts)
//   - Database: MySQL or SQLite cache connection
//   - Storage: S3/MinIO credentials and the raw archive bucket
//   - Log: Logging level and format
//   - Sources: fetch timeout, user agent, URL templates, rate limits, archive toggle
//
// Environment variables map to nested keys by replacing the dot with an underscore,
// e.g. SERVER_PORT -> server.port and SOURCES_BGG_RATE -> sources.bgg_rate.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
