package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Status is a record's return_code as captured. The capture extension writes
// the HTTP status number for completed requests and the label "FAILED" for
// requests that never got a response.
type Status struct {
	Code  int    // HTTP status when the value is an integral number
	Label string // Any other value, as written (e.g. "FAILED", "200.5")
}

// Code returns the Status for a numeric HTTP status.
func Code(n int) Status {
	return Status{Code: n}
}

// Present reports whether the status counts as set. Absent, null, 0, false,
// "" and empty containers do not; everything else does.
func (s Status) Present() bool {
	return s.Code != 0 || s.Label != ""
}

func (s Status) String() string {
	if s.Label != "" {
		return s.Label
	}
	return strconv.Itoa(s.Code)
}

// UnmarshalJSON keeps any JSON value. Integral numbers become Code, strings
// become Label verbatim, and other non-empty values keep their JSON text.
func (s *Status) UnmarshalJSON(data []byte) error {
	*s = parseStatus(data)
	return nil
}

// MarshalJSON writes the code as a number, a label as a string and an unset
// status as null.
func (s Status) MarshalJSON() ([]byte, error) {
	switch {
	case s.Label != "":
		return json.Marshal(s.Label)
	case s.Code != 0:
		return []byte(strconv.Itoa(s.Code)), nil
	default:
		return []byte("null"), nil
	}
}

func parseStatus(raw json.RawMessage) Status {
	trimmed := bytes.TrimSpace(raw)
	if IsEmptyJSON(trimmed) {
		return Status{}
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return Status{Label: string(trimmed)}
	}

	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) && math.Abs(val) <= math.MaxInt32 {
			return Status{Code: int(val)}
		}
		return Status{Label: string(trimmed)}
	case string:
		return Status{Label: val}
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return Status{Label: string(trimmed)}
		}
		return Status{Label: compact.String()}
	}
}
