package config

// DatabaseConfig holds the MySQL connection settings used when the player
// source is "mysql".
type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	MigrationsPath string
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:           envOrDefault(envDBHost, defaultDBHost),
		Port:           intEnvOrDefault(envDBPort, defaultDBPort),
		User:           envOrDefault(envDBUser, "root"),
		Password:       envOrDefault(envDBPassword, ""),
		Name:           envOrDefault(envDBName, defaultDBName),
		MigrationsPath: envOrDefault(envMigrationsPath, defaultMigrationsPath),
	}
}
