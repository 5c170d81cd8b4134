package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/usestring/capture-apidoc/pkg/docgen"
)

const (
	inputFile  = "api_requests.json"
	outputFile = "api_documentation.md"
)

func main() {
	// Paths are fixed; logging is configured from environment variables:
	// - LOG_LEVEL: debug, info, warn, error (default: info)
	// - LOG_FILE: path to log file (default: stderr only)
	gen, err := docgen.New(
		docgen.WithInputPath(inputFile),
		docgen.WithOutputPath(outputFile),
	)
	if err != nil {
		slog.Error("failed to create generator", "error", err)
		os.Exit(1)
	}

	if _, err := gen.Run(); err != nil {
		switch {
		case docgen.IsInputNotFound(err):
			fmt.Printf("Error: file '%s' not found.\n", inputFile)
		case docgen.IsInputMalformed(err):
			fmt.Printf("Error: could not read JSON from file '%s'.\n", inputFile)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		_ = gen.Close()
		os.Exit(1)
	}
	_ = gen.Close()

	fmt.Printf("Done! Documentation saved to '%s'\n", outputFile)
}
