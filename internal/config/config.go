package config

import "os"

type Config struct {
	// Database (low-privilege credential)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Optional elevated credential. When both fields are set the server
	// connects with them instead of the low-privilege pair, bypassing
	// row-level access policy for server-side operations. The choice is made
	// once at startup, never per request.
	DBServiceUser     string
	DBServicePassword string

	// Stand-in for real authentication: every request is attributed to this
	// single operator id.
	OperatorID string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ryoufit_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DBServiceUser:     getEnv("DB_SERVICE_USER", ""),
		DBServicePassword: getEnv("DB_SERVICE_PASSWORD", ""),

		OperatorID: getEnv("OPERATOR_ID", "1"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

// Elevated reports whether a service-role credential is configured.
func (c *Config) Elevated() bool {
	return c.DBServiceUser != "" && c.DBServicePassword != ""
}

func (c *Config) DSN() string {
	user, password := c.DBUser, c.DBPassword
	if c.Elevated() {
		user, password = c.DBServiceUser, c.DBServicePassword
	}
	return "host=" + c.DBHost +
		" user=" + user +
		" password=" + password +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
