package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usestring/capture-apidoc/pkg/types"
)

func TestSelectExamples(t *testing.T) {
	a1 := rec("https://h/x?n=1", 200, "")
	a2 := rec("https://h/x?n=2", 200, "")
	b := rec("https://h/x?n=3", 200, `{"k":1}`)
	c := rec("https://h/x?n=4", 404, "")
	d := rec("https://h/x?n=5", 500, `{"k":2}`)

	tests := []struct {
		name     string
		records  []types.Record
		limit    int
		expected []types.Record
	}{
		{
			name:     "A,A,B,C,D keeps first three signatures",
			records:  []types.Record{a1, a2, b, c, d},
			limit:    3,
			expected: []types.Record{a1, b, c},
		},
		{
			name:     "duplicates collapse to first occurrence",
			records:  []types.Record{a1, a2},
			limit:    3,
			expected: []types.Record{a1},
		},
		{
			name:     "order is first-seen order",
			records:  []types.Record{c, a1, c, b},
			limit:    3,
			expected: []types.Record{c, a1, b},
		},
		{
			name:     "larger limit keeps all signatures",
			records:  []types.Record{a1, a2, b, c, d},
			limit:    10,
			expected: []types.Record{a1, b, c, d},
		},
		{
			name:     "zero limit uses default",
			records:  []types.Record{a1, b, c, d},
			limit:    0,
			expected: []types.Record{a1, b, c},
		},
		{
			name:     "empty input",
			records:  nil,
			limit:    3,
			expected: []types.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectExamples(tt.records, tt.limit))
		})
	}
}

func TestSelectExamples_EmptyPayloadIsStillPresent(t *testing.T) {
	// An empty-string payload is present for signatures even though it does
	// not make the endpoint a POST.
	absent := rec("https://h/x", 200, "")
	empty := types.Record{Endpoint: "https://h/x", ReturnCode: types.Code(200), Payload: json.RawMessage(`""`)}

	got := SelectExamples([]types.Record{absent, empty}, 3)
	assert.Len(t, got, 2)
	assert.Equal(t, types.MethodGET, InferMethod([]types.Record{absent, empty}))
}

func TestInferMethod(t *testing.T) {
	tests := []struct {
		name     string
		payloads []string
		expected string
	}{
		{name: "no payloads", payloads: []string{"", ""}, expected: types.MethodGET},
		{name: "null payload", payloads: []string{"null"}, expected: types.MethodGET},
		{name: "empty object", payloads: []string{"{}"}, expected: types.MethodGET},
		{name: "empty array", payloads: []string{"[]"}, expected: types.MethodGET},
		{name: "empty string", payloads: []string{`""`}, expected: types.MethodGET},
		{name: "one object payload", payloads: []string{"", `{"a":1}`}, expected: types.MethodPOST},
		{name: "string payload", payloads: []string{`"a=1&b=2"`}, expected: types.MethodPOST},
		{name: "no records", payloads: nil, expected: types.MethodGET},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]types.Record, 0, len(tt.payloads))
			for _, p := range tt.payloads {
				records = append(records, rec("https://h/x", 200, p))
			}
			assert.Equal(t, tt.expected, InferMethod(records))
		})
	}
}
