package docgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/usestring/capture-apidoc/internal/capture"
	"github.com/usestring/capture-apidoc/internal/catalog"
	"github.com/usestring/capture-apidoc/internal/config"
	"github.com/usestring/capture-apidoc/internal/logging"
	"github.com/usestring/capture-apidoc/internal/render"
	"github.com/usestring/capture-apidoc/pkg/types"
)

// Generator converts one capture file into one Markdown document.
type Generator struct {
	config     *config.Config
	loader     *capture.Loader
	classifier *catalog.Classifier
	renderer   *render.Renderer
	logCleanup func() error
}

// New creates a Generator. Configuration starts from config.Load and is then
// overridden by opts.
func New(opts ...Option) (*Generator, error) {
	cfg := &generatorConfig{
		config: config.Load(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logCfg := logging.FromConfig(cfg.config)
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	loader, err := capture.NewLoader()
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}

	classifier, err := catalog.NewClassifier(nil, cfg.config.ClassifierCacheSize)
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	renderer := render.New(render.Options{
		Title:       cfg.config.Title,
		MaxExamples: cfg.config.MaxExamples,
		Limits: render.Limits{
			MaxArrayItems: cfg.config.CompactMaxArrayItems,
			MaxStringLen:  cfg.config.CompactMaxStringLen,
			MaxDepth:      cfg.config.CompactMaxDepth,
		},
	})

	return &Generator{
		config:     cfg.config,
		loader:     loader,
		classifier: classifier,
		renderer:   renderer,
		logCleanup: logCleanup,
	}, nil
}

// Run loads the input, builds the catalog and writes the document.
// The document is rendered in memory first, so a failed run leaves no output file.
func (g *Generator) Run() (*types.RunStats, error) {
	slog.Debug("generating documentation",
		slog.String("input", g.config.InputPath),
		slog.String("output", g.config.OutputPath),
		slog.Bool("compaction", g.config.CompactionEnabled()),
	)

	capt, err := g.loader.Load(g.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("loading capture: %w", err)
	}

	cat := catalog.Build(capt.Records, g.classifier)
	if err := cat.Verify(); err != nil {
		return nil, fmt.Errorf("classifying records: %w", err)
	}

	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, cat); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	if err := os.WriteFile(g.config.OutputPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", g.config.OutputPath, err)
	}

	stats := cat.Stats()
	stats.Total = capt.Total
	stats.Skipped = capt.Skipped

	slog.Info("documentation written",
		slog.String("output", g.config.OutputPath),
		slog.Int("records", stats.Total),
		slog.Int("skipped", stats.Skipped),
		slog.Int("discarded", stats.Discarded),
		slog.Int("assets", stats.Assets),
		slog.Int("endpoints", stats.Endpoints),
	)

	return &stats, nil
}

// InputPath returns the capture file the generator reads.
func (g *Generator) InputPath() string {
	return g.config.InputPath
}

// OutputPath returns the document file the generator writes.
func (g *Generator) OutputPath() string {
	return g.config.OutputPath
}

// Close releases the log file, if any.
func (g *Generator) Close() error {
	if g.logCleanup != nil {
		return g.logCleanup()
	}
	return nil
}

// IsInputNotFound reports whether err is caused by a missing or unreadable input file.
func IsInputNotFound(err error) bool {
	return capture.IsNotFound(err)
}

// IsInputMalformed reports whether err is caused by input that is not a JSON array.
func IsInputMalformed(err error) bool {
	return capture.IsMalformed(err)
}
