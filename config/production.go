// Package config loads service configuration from the environment and an optional .env file
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirphl/super-niche-selector/utils"
)

type ProductionConfig struct {
	Server     ServerConfig     `json:"server"`
	Logging    LoggingConfig    `json:"logging"`
	Metrics    MetricsConfig    `json:"metrics"`
	Cache      CacheConfig      `json:"cache"`
	Directory  DirectoryConfig  `json:"directory"`
	Scoring    ScoringConfig    `json:"scoring"`
	Export     ExportConfig     `json:"export"`
	Deployment DeploymentConfig `json:"deployment"`
}

type ServerConfig struct {
	Host              string        `json:"host"`
	Port              int           `json:"port"`
	ReadTimeout       time.Duration `json:"read_timeout"`
	WriteTimeout      time.Duration `json:"write_timeout"`
	IdleTimeout       time.Duration `json:"idle_timeout"`
	ShutdownTimeout   time.Duration `json:"shutdown_timeout"`
	BodyLimit         int           `json:"body_limit"`
	EnableCompression bool          `json:"enable_compression"`
	AllowedOrigins    []string      `json:"allowed_origins"`
	GlobalRateLimit   int           `json:"global_rate_limit"`
	ExportRateLimit   int           `json:"export_rate_limit"`
	RateLimitWindow   time.Duration `json:"rate_limit_window"`
}

type LoggingConfig struct {
	Level      string `json:"level"`  // debug, info, warn, error
	Output     string `json:"output"` // stdout, file, both
	FilePath   string `json:"file_path"`
	MaxSize    int    `json:"max_size"` // MB
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
	Compress   bool   `json:"compress"`

	EnableAccessLog bool `json:"enable_access_log"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

type CacheConfig struct {
	Enabled       bool          `json:"enabled"`
	RedisURL      string        `json:"redis_url"`
	RedisPassword string        `json:"-"`
	RedisDB       int           `json:"redis_db"`
	RedisPrefix   string        `json:"redis_prefix"`
	DefaultTTL    time.Duration `json:"default_ttl"`
}

type DirectoryConfig struct {
	Enabled     bool          `json:"enabled"`
	BaseURL     string        `json:"base_url"`
	Timeout     time.Duration `json:"timeout"`
	LoadTimeout time.Duration `json:"load_timeout"`
}

type ScoringConfig struct {
	// RarityTablePath replaces the compiled-in rarity table when set
	RarityTablePath string `json:"rarity_table_path"`
}

type ExportConfig struct {
	Enabled  bool   `json:"enabled"`
	Title    string `json:"title"`
	PNGScale int    `json:"png_scale"`
}

type DeploymentConfig struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
	CommitHash  string `json:"commit_hash"`
	BuildTime   string `json:"build_time"`
}

// IsDevelopment reports whether development-only routes should be served
func (d DeploymentConfig) IsDevelopment() bool {
	return d.Environment == "development" || d.Environment == "local"
}

// LoadProductionConfig loads and validates configuration from environment variables
func LoadProductionConfig() (*ProductionConfig, error) {
	// Load environment variables from .env file
	if err := loadEnvFile(getEnvString("CONFIG_ENV_FILE", ".env")); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &ProductionConfig{
		Server: ServerConfig{
			Host:              getEnvString("SERVER_HOST", "0.0.0.0"),
			Port:              getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:       getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:      getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout:   getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			BodyLimit:         getEnvInt("SERVER_BODY_LIMIT", 1*1024*1024), // 1MB
			EnableCompression: getEnvBool("SERVER_ENABLE_COMPRESSION", true),
			AllowedOrigins:    getEnvStringSlice("SERVER_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			GlobalRateLimit:   getEnvInt("SERVER_GLOBAL_RATE_LIMIT", 600),
			ExportRateLimit:   getEnvInt("SERVER_EXPORT_RATE_LIMIT", 30),
			RateLimitWindow:   getEnvDuration("SERVER_RATE_LIMIT_WINDOW", 1*time.Minute),
		},
		Logging: LoggingConfig{
			Level:           getEnvString("LOG_LEVEL", "info"),
			Output:          getEnvString("LOG_OUTPUT", "stdout"),
			FilePath:        getEnvString("LOG_FILE_PATH", "logs/super-niche-selector.log"),
			MaxSize:         getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups:      getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAge:          getEnvInt("LOG_MAX_AGE", 30),
			Compress:        getEnvBool("LOG_COMPRESS", true),
			EnableAccessLog: getEnvBool("LOG_ENABLE_ACCESS_LOG", true),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnvString("METRICS_PATH", "/metrics"),
		},
		Cache: CacheConfig{
			Enabled:       getEnvBool("CACHE_ENABLED", false),
			RedisURL:      getEnvString("CACHE_REDIS_URL", "redis://localhost:6379/0"),
			RedisPassword: getEnvString("CACHE_REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("CACHE_REDIS_DB", 0),
			RedisPrefix:   getEnvString("CACHE_REDIS_PREFIX", "super-niche:"),
			DefaultTTL:    getEnvDuration("CACHE_DEFAULT_TTL", 24*time.Hour),
		},
		Directory: DirectoryConfig{
			Enabled:     getEnvBool("DIRECTORY_ENABLED", true),
			BaseURL:     getEnvString("DIRECTORY_BASE_URL", "https://restcountries.com"),
			Timeout:     getEnvDuration("DIRECTORY_TIMEOUT", 10*time.Second),
			LoadTimeout: getEnvDuration("DIRECTORY_LOAD_TIMEOUT", 30*time.Second),
		},
		Scoring: ScoringConfig{
			RarityTablePath: getEnvString("SCORING_RARITY_TABLE_PATH", ""),
		},
		Export: ExportConfig{
			Enabled:  getEnvBool("EXPORT_ENABLED", true),
			Title:    getEnvString("EXPORT_TITLE", "Super Niche Selector"),
			PNGScale: getEnvInt("EXPORT_PNG_SCALE", 2),
		},
		Deployment: DeploymentConfig{
			Environment: getEnvString("APP_ENV", "production"),
			Version:     getEnvString("APP_VERSION", utils.AppVersion),
			CommitHash:  getEnvString("COMMIT_HASH", "unknown"),
			BuildTime:   getEnvString("BUILD_TIME", "unknown"),
		},
	}

	// Validate the loaded configuration
	if err := ValidateProductionConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile loads environment variables from envFile if it exists.
// Variables already present in the environment win.
func loadEnvFile(envFile string) error {
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(envFile)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", envFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		value = strings.TrimSpace(value)

		// Remove quotes if present
		if len(value) >= 2 && ((strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`))) {
			value = value[1 : len(value)-1]
		}

		if _, set := os.LookupEnv(key); !set {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set %s: %w", key, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", envFile, err)
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, item := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// ValidateProductionConfig validates the production configuration
func ValidateProductionConfig(cfg *ProductionConfig) error {
	var errors []string

	// Validate server configuration
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		errors = append(errors, "SERVER_PORT must be between 1 and 65535")
	}
	if cfg.Server.ReadTimeout <= 0 {
		errors = append(errors, "SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		errors = append(errors, "SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.IdleTimeout <= 0 {
		errors = append(errors, "SERVER_IDLE_TIMEOUT must be positive")
	}
	if cfg.Server.BodyLimit <= 0 {
		errors = append(errors, "SERVER_BODY_LIMIT must be positive")
	}
	if cfg.Server.GlobalRateLimit <= 0 || cfg.Server.ExportRateLimit <= 0 {
		errors = append(errors, "SERVER_GLOBAL_RATE_LIMIT and SERVER_EXPORT_RATE_LIMIT must be positive")
	}
	if cfg.Server.RateLimitWindow <= 0 {
		errors = append(errors, "SERVER_RATE_LIMIT_WINDOW must be positive")
	}

	// Validate logging configuration
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.Logging.Level) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %v", validLevels))
	}
	validOutputs := []string{"stdout", "file", "both"}
	if !contains(validOutputs, cfg.Logging.Output) {
		errors = append(errors, fmt.Sprintf("LOG_OUTPUT must be one of: %v", validOutputs))
	}
	if cfg.Logging.Output != "stdout" && cfg.Logging.FilePath == "" {
		errors = append(errors, "LOG_FILE_PATH is required when logging to a file")
	}

	// Validate metrics configuration
	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errors = append(errors, "METRICS_PATH must start with /")
	}

	// Validate cache configuration if enabled
	if cfg.Cache.Enabled {
		if cfg.Cache.RedisURL == "" {
			errors = append(errors, "CACHE_REDIS_URL is required when cache is enabled")
		}
		if cfg.Cache.DefaultTTL <= 0 {
			errors = append(errors, "CACHE_DEFAULT_TTL must be positive when cache is enabled")
		}
	}

	// Validate directory configuration if enabled
	if cfg.Directory.Enabled {
		if !strings.HasPrefix(cfg.Directory.BaseURL, "http://") && !strings.HasPrefix(cfg.Directory.BaseURL, "https://") {
			errors = append(errors, "DIRECTORY_BASE_URL must be an http(s) URL")
		}
		if cfg.Directory.Timeout <= 0 || cfg.Directory.LoadTimeout <= 0 {
			errors = append(errors, "DIRECTORY_TIMEOUT and DIRECTORY_LOAD_TIMEOUT must be positive")
		}
	}

	// Validate scoring configuration
	if p := cfg.Scoring.RarityTablePath; p != "" {
		if _, err := os.Stat(p); err != nil {
			errors = append(errors, fmt.Sprintf("SCORING_RARITY_TABLE_PATH is not readable: %v", err))
		}
	}

	// Validate export configuration
	if cfg.Export.PNGScale < 1 || cfg.Export.PNGScale > 4 {
		errors = append(errors, "EXPORT_PNG_SCALE must be between 1 and 4")
	}

	// Return validation errors if any
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
