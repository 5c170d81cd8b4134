// Package types provides shared types for capture-apidoc.
// These types are used across multiple packages and are designed for external consumption.
package types

import (
	"bytes"
	"encoding/json"
)

// Record is one intercepted HTTP exchange as written by the capture extension.
type Record struct {
	Endpoint   string          `json:"endpoint"`
	Payload    json.RawMessage `json:"payload,omitempty"`   // nil when absent or null
	Response   json.RawMessage `json:"response,omitempty"`  // nil when absent or null
	ReturnCode Status          `json:"return_code"`         // Unset when absent, null or falsy
	Timestamp  string          `json:"timestamp,omitempty"` // As written by the capture extension
	AuthNeeded bool            `json:"auth_needed,omitempty"`
}

// UnmarshalJSON decodes a record leniently. Payload and response keep their raw
// JSON (null collapses to nil), and return_code keeps any value (see Status).
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Endpoint   string          `json:"endpoint"`
		Payload    json.RawMessage `json:"payload"`
		Response   json.RawMessage `json:"response"`
		ReturnCode json.RawMessage `json:"return_code"`
		Timestamp  json.RawMessage `json:"timestamp"`
		AuthNeeded json.RawMessage `json:"auth_needed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{
		Endpoint:   raw.Endpoint,
		Payload:    nilIfNull(raw.Payload),
		Response:   nilIfNull(raw.Response),
		ReturnCode: parseStatus(raw.ReturnCode),
	}

	// Timestamp and auth flag are informational; wrong types are ignored.
	_ = json.Unmarshal(raw.Timestamp, &r.Timestamp)
	_ = json.Unmarshal(raw.AuthNeeded, &r.AuthNeeded)

	return nil
}

// HasPayload reports whether the record carried any payload value at all.
func (r *Record) HasPayload() bool {
	return nilIfNull(r.Payload) != nil
}

// HasNonEmptyPayload reports whether the payload is present and not an empty
// value ("", {}, [], false or 0).
func (r *Record) HasNonEmptyPayload() bool {
	return !IsEmptyJSON(r.Payload)
}

// Signature is the (status, payload presence) pair used to tell examples apart.
type Signature struct {
	Status     Status
	HasPayload bool
}

// Signature returns the example signature of the record.
func (r *Record) Signature() Signature {
	return Signature{Status: r.ReturnCode, HasPayload: r.HasPayload()}
}

// IsEmptyJSON reports whether raw is absent, null, or an empty/zero JSON value.
func IsEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		// Not valid JSON, but there is something there
		return false
	}

	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

func nilIfNull(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
