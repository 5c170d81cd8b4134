package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS", "LOG_COMPRESS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "api_requests.json", cfg.InputPath)
	assert.Equal(t, "api_documentation.md", cfg.OutputPath)
	assert.Equal(t, 3, cfg.MaxExamples)
	assert.False(t, cfg.CompactionEnabled())
}

func TestLoad_LoggingOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/apidoc.log")
	t.Setenv("LOG_MAX_SIZE_MB", "50")
	t.Setenv("LOG_MAX_BACKUPS", "not a number")
	t.Setenv("LOG_COMPRESS", "off")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/apidoc.log", cfg.LogFile)
	assert.Equal(t, 50, cfg.LogMaxSizeMB)
	assert.Equal(t, 5, cfg.LogMaxBackups)
	assert.False(t, cfg.LogCompress)

	// Document settings never come from the environment
	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
}

func TestCompactionEnabled(t *testing.T) {
	cfg := Default()
	cfg.CompactMaxDepth = 4
	assert.True(t, cfg.CompactionEnabled())
}
