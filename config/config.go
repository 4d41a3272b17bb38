package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Registers commands to a single guild when set

	// Storage configuration
	DataDir string // Directory holding the JSON stores

	// Keep-alive configuration
	StatusPort       int           // Port of the status HTTP server, 0 disables it
	AutoPingURL      string        // URL pinged to keep the host awake, empty disables it
	AutoPingInterval time.Duration

	// Workers
	VIPSweepInterval time.Duration

	// Metrics configuration
	MetricsEnabled  bool
	MetricsExporter string // "console", "otlp" or "none"
	OTLPEndpoint    string
	MetricsInterval time.Duration
	ServiceName     string

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// Load reads the configuration from the environment without caching it
func Load() (*Config, error) {
	return load()
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("DISCORD_GUILD_ID"),

		// Storage
		DataDir: getEnvWithDefault("DATA_DIR", "data"),

		// Keep-alive
		StatusPort:       getIntWithDefault("STATUS_PORT", 10000),
		AutoPingURL:      os.Getenv("AUTOPING_URL"),
		AutoPingInterval: getDurationWithDefault("AUTOPING_INTERVAL", 14*time.Minute),

		// Workers
		VIPSweepInterval: getDurationWithDefault("VIP_SWEEP_INTERVAL", time.Hour),

		// Metrics
		MetricsEnabled:  getEnvWithDefault("METRICS_ENABLED", "false") == "true",
		MetricsExporter: getEnvWithDefault("METRICS_EXPORTER", "console"),
		OTLPEndpoint:    getEnvWithDefault("OTLP_ENDPOINT", "localhost:4317"),
		MetricsInterval: getDurationWithDefault("METRICS_INTERVAL", 30*time.Second),
		ServiceName:     getEnvWithDefault("SERVICE_NAME", "natanbot"),

		// Logging
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		// Environment
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}
	if config.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR cannot be empty")
	}
	if config.VIPSweepInterval <= 0 {
		return nil, fmt.Errorf("VIP_SWEEP_INTERVAL must be positive")
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("Invalid %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:     "test-token",
		DataDir:          "testdata",
		AutoPingInterval: 14 * time.Minute,
		VIPSweepInterval: time.Hour,
		MetricsExporter:  "none",
		MetricsInterval:  30 * time.Second,
		ServiceName:      "natanbot-test",
		LogLevel:         "debug",
		Environment:      "test",
	}
}
