package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Source      string
	CSVPath     string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string
	Database    DatabaseConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Source:      strings.ToLower(envOrDefault(envSource, defaultSource)),
		CSVPath:     envOrDefault(envCSVPath, defaultCSVPath),
		CORSOrigins: splitOrigins(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		Database:    loadDatabase(),
		Metrics:     loadMetrics(),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
