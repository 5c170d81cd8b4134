package docgen

import (
	"github.com/usestring/capture-apidoc/internal/config"
)

// generatorConfig holds configuration built from options.
type generatorConfig struct {
	config *config.Config

	// Logging overrides
	logLevel string
	logFile  string
}

// Option configures the generator.
type Option func(*generatorConfig)

// WithInputPath sets the capture file to read.
func WithInputPath(path string) Option {
	return func(cfg *generatorConfig) {
		cfg.config.InputPath = path
	}
}

// WithOutputPath sets the Markdown file to write.
func WithOutputPath(path string) Option {
	return func(cfg *generatorConfig) {
		cfg.config.OutputPath = path
	}
}

// WithTitle sets the document's top-level heading.
func WithTitle(title string) Option {
	return func(cfg *generatorConfig) {
		cfg.config.Title = title
	}
}

// WithMaxExamples sets how many distinct examples are rendered per endpoint.
// Values <= 0 keep the default of 3.
func WithMaxExamples(n int) Option {
	return func(cfg *generatorConfig) {
		if n > 0 {
			cfg.config.MaxExamples = n
		}
	}
}

// WithCompaction trims rendered payloads and responses.
// Zero disables the corresponding limit.
//
// Example:
//
//	// At most 20 array items and 500 characters per string, any depth
//	docgen.WithCompaction(20, 500, 0)
func WithCompaction(maxArrayItems, maxStringLen, maxDepth int) Option {
	return func(cfg *generatorConfig) {
		cfg.config.CompactMaxArrayItems = maxArrayItems
		cfg.config.CompactMaxStringLen = maxStringLen
		cfg.config.CompactMaxDepth = maxDepth
	}
}

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(cfg *generatorConfig) {
		cfg.logLevel = level
	}
}

// WithLogFile sets the log file path.
// If empty, logs are written to stderr only.
func WithLogFile(path string) Option {
	return func(cfg *generatorConfig) {
		cfg.logFile = path
	}
}
