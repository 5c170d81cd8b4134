package capture

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RecordSchema describes one capture record as written by the browser extension.
// Only endpoint is required; every other field may be missing or null.
func RecordSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("endpoint", &jsonschema.Schema{
		Type:        "string",
		Description: "Full request URL",
	})
	props.Set("payload", &jsonschema.Schema{
		Description: "Request body, any JSON value",
	})
	props.Set("response", &jsonschema.Schema{
		Description: "Response body, any JSON value",
	})
	props.Set("return_code", &jsonschema.Schema{
		Description: "HTTP status code, or a label such as FAILED",
		AnyOf:       []*jsonschema.Schema{{Type: "number"}, {Type: "string"}, {Type: "boolean"}, {Type: "null"}},
	})
	props.Set("timestamp", &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{{Type: "string"}, {Type: "null"}},
	})
	props.Set("auth_needed", &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{{Type: "boolean"}, {Type: "null"}},
	})

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"endpoint"},
	}
}

// DocumentSchema describes a whole capture file: an array of records.
func DocumentSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Version: jsonschema.Version,
		Type:    "array",
		Items:   RecordSchema(),
	}
}

// Validator validates capture documents against DocumentSchema.
type Validator struct {
	schema *sjsonschema.Schema
}

// NewValidator compiles DocumentSchema.
func NewValidator() (*Validator, error) {
	// Convert to JSON and back to get a clean map[string]any
	schemaJSON, err := json.Marshal(DocumentSchema())
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}

	var schemaValue any
	if err := json.Unmarshal(schemaJSON, &schemaValue); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	compiler := sjsonschema.NewCompiler()
	if err := compiler.AddResource("capture.json", schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile("capture.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate checks a parsed document and returns human-readable violations,
// sorted by instance path. An empty result means the document is valid.
func (v *Validator) Validate(doc any) []string {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *sjsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []string{err.Error()}
	}

	errorsByPath := make(map[string][]string)
	collectErrors(validationErr, errorsByPath)

	paths := make([]string, 0, len(errorsByPath))
	for p := range errorsByPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var result []string
	for _, p := range paths {
		seen := make(map[string]bool)
		for _, msg := range errorsByPath[p] {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			if p != "" {
				result = append(result, fmt.Sprintf("%s: %s", p, msg))
			} else {
				result = append(result, msg)
			}
		}
	}
	return result
}

// printer is a default English printer for localized error messages.
var printer = message.NewPrinter(language.English)

// collectErrors recursively collects leaf errors (those without causes).
func collectErrors(err *sjsonschema.ValidationError, errorsByPath map[string][]string) {
	instancePath := ""
	if len(err.InstanceLocation) > 0 {
		instancePath = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		errMsg := err.ErrorKind.LocalizedString(printer)
		// anyOf/$ref wrappers only say that a subschema failed
		if !strings.HasPrefix(errMsg, "$ref ") && !strings.HasPrefix(errMsg, "doesn't validate with") {
			errorsByPath[instancePath] = append(errorsByPath[instancePath], errMsg)
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errorsByPath)
	}
}
