// Package config provides the generator configuration: fixed defaults plus
// logging overrides from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/usestring/capture-apidoc/pkg/types"
)

// Fixed locations, relative to the working directory.
const (
	DefaultInputPath  = "api_requests.json"
	DefaultOutputPath = "api_documentation.md"
	DefaultTitle      = "API Documentation"
)

// DefaultClassifierCacheSize bounds the per-path classification memo.
const DefaultClassifierCacheSize = 512

// Config holds all configuration for a generation run.
type Config struct {
	InputPath           string // api_requests.json
	OutputPath          string // api_documentation.md
	Title               string // Top-level document heading
	MaxExamples         int    // Distinct examples per endpoint, default 3
	ClassifierCacheSize int    // LRU size for asset classification, default 512

	// Body compaction for rendered payloads/responses (0 = no limit, all zero = disabled)
	CompactMaxArrayItems int
	CompactMaxStringLen  int
	CompactMaxDepth      int

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		InputPath:           DefaultInputPath,
		OutputPath:          DefaultOutputPath,
		Title:               DefaultTitle,
		MaxExamples:         types.DefaultMaxExamples,
		ClassifierCacheSize: DefaultClassifierCacheSize,

		LogLevel:      "info",
		LogFile:       "",
		LogMaxSizeMB:  10,
		LogMaxBackups: 5,
		LogMaxAgeDays: 28,
		LogCompress:   true,
	}
}

// Load returns Default with logging settings read from environment variables.
// Document-affecting settings are never read from the environment.
func Load() *Config {
	cfg := Default()

	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnvString("LOG_FILE", cfg.LogFile)
	cfg.LogMaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", cfg.LogMaxSizeMB)
	cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", cfg.LogMaxBackups)
	cfg.LogMaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", cfg.LogMaxAgeDays)
	cfg.LogCompress = getEnvBool("LOG_COMPRESS", cfg.LogCompress)

	return cfg
}

// CompactionEnabled reports whether any body compaction limit is set.
func (c *Config) CompactionEnabled() bool {
	return c.CompactMaxArrayItems > 0 || c.CompactMaxStringLen > 0 || c.CompactMaxDepth > 0
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
