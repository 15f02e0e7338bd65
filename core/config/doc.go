// Package config provides configuration management for codecheck.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, live-reload flag)
//   - Log: Logging level and format
//
// Default values are declared as struct tags and bound reflectively, so every
// key is also overridable through the environment (SERVER_PORT, LOG_LEVEL, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
