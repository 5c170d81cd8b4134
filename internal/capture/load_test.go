package capture

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/capture-apidoc/pkg/types"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api_requests.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `[
		{"endpoint": "https://h/api/users/1", "return_code": 200, "response": {"id": 1}},
		{"endpoint": "https://h/api/users", "payload": "{\"name\":\"a\"}", "return_code": 201, "auth_needed": true},
		{"endpoint": "https://h/app.js", "return_code": null, "payload": null}
	]`)

	c, err := newTestLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 0, c.Skipped)
	assert.Empty(t, c.Violations)
	require.Len(t, c.Records, 3)

	assert.Equal(t, "https://h/api/users/1", c.Records[0].Endpoint)
	assert.Equal(t, types.Code(200), c.Records[0].ReturnCode)
	assert.JSONEq(t, `{"id": 1}`, string(c.Records[0].Response))
	assert.True(t, c.Records[1].AuthNeeded)
	assert.True(t, c.Records[1].HasPayload())
	assert.False(t, c.Records[2].ReturnCode.Present())
	assert.Nil(t, c.Records[2].Payload)
}

func TestLoad_Empty(t *testing.T) {
	c, err := newTestLoader(t).Load(writeFile(t, `[]`))
	require.NoError(t, err)
	assert.Empty(t, c.Records)
	assert.Equal(t, 0, c.Total)
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsMalformed(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.json")
}

func TestLoad_Directory(t *testing.T) {
	_, err := newTestLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "empty file", content: "", message: "invalid JSON"},
		{name: "truncated", content: `[{"endpoint": "x"`, message: "invalid JSON"},
		{name: "trailing garbage", content: `[] []`, message: "invalid JSON"},
		{name: "not json", content: "endpoint,return_code\n", message: "invalid JSON"},
		{name: "object", content: `{"endpoint": "x"}`, message: "got object"},
		{name: "string", content: `"records"`, message: "got string"},
		{name: "null", content: `null`, message: "got null"},
	}

	l := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.True(t, IsMalformed(err))
			assert.False(t, IsNotFound(err))
			assert.Contains(t, err.Error(), ErrCodeInputMalformed)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_BadRecordsAreSkippedNotFatal(t *testing.T) {
	path := writeFile(t, `[
		{"endpoint": "https://h/a", "return_code": 200},
		"not a record",
		{"endpoint": 42, "return_code": 200},
		{"endpoint": "https://h/b", "return_code": {"weird": true}},
		{"endpoint": "https://h/c", "return_code": 500}
	]`)

	c, err := newTestLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 2, c.Skipped)
	require.Len(t, c.Records, 3)
	assert.Equal(t, "https://h/a", c.Records[0].Endpoint)
	assert.Equal(t, "https://h/b", c.Records[1].Endpoint)
	assert.Equal(t, types.Status{Label: `{"weird":true}`}, c.Records[1].ReturnCode)
	assert.Equal(t, "https://h/c", c.Records[2].Endpoint)

	require.NotEmpty(t, c.Violations)
	joined := ""
	for _, v := range c.Violations {
		joined += v + "\n"
	}
	assert.Contains(t, joined, "/1:")
	assert.Contains(t, joined, "/2/endpoint:")
	assert.Contains(t, joined, "/3/return_code:")
}
