// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings, such as
// the listen port, the optional API key and the live-reload flag.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings.
package server
