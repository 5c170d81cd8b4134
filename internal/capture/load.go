// Package capture reads capture files: JSON arrays of intercepted request records.
package capture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/usestring/capture-apidoc/pkg/types"
)

// maxLoggedViolations caps per-run schema warnings; the rest are summarized.
const maxLoggedViolations = 20

// Capture is the decoded content of one capture file.
type Capture struct {
	Records    []types.Record
	Total      int      // Elements in the input array
	Skipped    int      // Elements that could not be decoded as records
	Violations []string // Schema violations, informational only
}

// Loader reads and validates capture files.
type Loader struct {
	validator *Validator
}

// NewLoader creates a Loader with a compiled document schema.
func NewLoader() (*Loader, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, fmt.Errorf("creating validator: %w", err)
	}
	return &Loader{validator: v}, nil
}

// Load reads path and decodes its records.
// Returns a LoadError with ErrCodeInputNotFound if path is not a readable file
// and ErrCodeInputMalformed if the content is not a JSON array.
// Elements that are not decodable records are skipped, not fatal.
func (l *Loader) Load(path string) (*Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrInputNotFound(path, err)
	}
	return l.Decode(path, data)
}

// Decode parses capture content. path is only used in errors and logs.
func (l *Loader) Decode(path string, data []byte) (*Capture, error) {
	doc, err := sjsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInputMalformed(path, "invalid JSON", err)
	}
	if _, ok := doc.([]any); !ok {
		return nil, ErrInputMalformed(path, fmt.Sprintf("expected a JSON array of records, got %s", jsonKind(doc)), nil)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, ErrInputMalformed(path, "invalid JSON", err)
	}

	capture := &Capture{
		Records:    make([]types.Record, 0, len(elements)),
		Total:      len(elements),
		Violations: l.validator.Validate(doc),
	}
	logViolations(path, capture.Violations)

	for i, raw := range elements {
		var rec types.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			capture.Skipped++
			slog.Warn("skipping undecodable record",
				slog.String("path", path),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		capture.Records = append(capture.Records, rec)
	}

	slog.Info("capture loaded",
		slog.String("path", path),
		slog.Int("records", len(capture.Records)),
		slog.Int("skipped", capture.Skipped),
	)

	return capture, nil
}

func logViolations(path string, violations []string) {
	for i, v := range violations {
		if i == maxLoggedViolations {
			slog.Warn("more schema violations not shown",
				slog.String("path", path),
				slog.Int("remaining", len(violations)-maxLoggedViolations),
			)
			return
		}
		slog.Warn("record schema violation",
			slog.String("path", path),
			slog.String("violation", v),
		)
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
