package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // API key required for dataset writes
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration

	// Logging
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// Dataset source. DatasetURL wins over DatasetPath; with neither the server
	// starts empty. DatasetName loads a stored dataset once the database is up.
	DatasetPath string
	DatasetURL  string
	DatasetName string

	// DatasetRefreshInterval re-fetches DatasetURL periodically; zero disables it
	DatasetRefreshInterval time.Duration

	// Efficiency result cache
	CacheSize int
	CacheTTL  time.Duration

	// Optional Postgres persistence
	DBEnabled         bool
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Discord front-end
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	APIURL         string

	// Report output
	ReportPath  string
	RewardsPath string
}

// Load loads the API server configuration from environment variables
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadDiscord loads the configuration for the Discord bot and offline tools,
// where API_KEY is optional
func LoadDiscord() (*Config, error) {
	return loadFromEnv()
}

func loadFromEnv() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:      getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:     getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		DatasetPath: getEnv("DATASET_PATH", ""),
		DatasetURL:  getEnv("DATASET_URL", ""),
		DatasetName: getEnv("DATASET_NAME", ""),

		DatasetRefreshInterval: getEnvAsDuration("DATASET_REFRESH_INTERVAL", 0),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),

		DBEnabled:         getEnvAsBool("DB_ENABLED", false),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "craftvalue"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID: getEnv("DISCORD_GUILD_ID", ""),
		APIURL:         getEnv("API_URL", "http://localhost:8080"),

		ReportPath:  getEnv("REPORT_PATH", DefaultReportPath),
		RewardsPath: getEnv("REWARDS_PATH", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to defaultValue when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
