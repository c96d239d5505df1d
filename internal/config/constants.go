package config

const (
	envPort           = "PORT"
	envSource         = "PLAYER_SOURCE"
	envCSVPath        = "PLAYERS_CSV_PATH"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envDBHost         = "DB_HOST"
	envDBPort         = "DB_PORT"
	envDBUser         = "DB_USER"
	envDBPassword     = "DB_PASSWORD"
	envDBName         = "DB_NAME"
	envMigrationsPath = "MIGRATIONS_PATH"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	// SourceCSV seeds the in-memory catalog from a CSV file; SourceMySQL
	// serves queries straight from the players table.
	SourceCSV   = "csv"
	SourceMySQL = "mysql"

	defaultPort           = "3001"
	defaultSource         = SourceCSV
	defaultCSVPath        = "data/players.csv"
	defaultCORSOrigins    = "*"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultDBHost         = "localhost"
	defaultDBPort         = 3306
	defaultDBName         = "nba_roster"
	defaultMigrationsPath = "migrations"
)
