package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the check API.
	// Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// Reloader indicates the process runs under a live-reload supervisor.
	// When set, the start command attaches the remote debug stream.
	Reloader bool `mapstructure:"reloader" default:"false"`
}
