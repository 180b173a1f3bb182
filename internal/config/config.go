package config

// Config holds runtime configuration for both the HTTP and MCP processes.
type Config struct {
	Port    string
	Store   StoreConfig
	Events  EventsConfig
	Metrics MetricsConfig
	Tracing TracingConfig
	Log     LogConfig
}

// LogConfig selects log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		Store:   loadStore(),
		Events:  loadEvents(),
		Metrics: loadMetrics(),
		Tracing: loadTracing(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
