// Package docgen turns a capture file of intercepted HTTP requests into a
// Markdown API reference.
//
// # Basic Usage
//
// Generate api_documentation.md from api_requests.json in the working directory:
//
//	gen, err := docgen.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	stats, err := gen.Run()
//
// # Options
//
// Paths, the document title and the per-endpoint example count can be changed
// with functional options:
//
//	gen, err := docgen.New(
//	    docgen.WithInputPath("capture.json"),
//	    docgen.WithOutputPath("docs/api.md"),
//	    docgen.WithTitle("Shop API"),
//	    docgen.WithMaxExamples(5),
//	    docgen.WithCompaction(20, 500, 0),
//	)
//
// # Errors
//
// Run returns an error wrapping a *capture.LoadError when the input file is
// missing or is not a JSON array. Use IsInputNotFound and IsInputMalformed to
// tell them apart. Nothing is written in that case.
//
// # Configuration
//
// Logging is configured from environment variables:
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FILE: path to a rotated log file (default: stderr only)
//   - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS, LOG_COMPRESS
//
// WithLogLevel and WithLogFile take precedence over the environment.
package docgen
