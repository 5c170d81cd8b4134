package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationCache(t *testing.T) {
	c, err := NewClassificationCache(2)
	require.NoError(t, err)

	c.Put("/a.js", Classification{Category: "Scripts (.js)", Matched: true})
	c.Put("/api/users", Classification{})

	got, ok := c.Get("/a.js")
	require.True(t, ok)
	assert.Equal(t, "Scripts (.js)", got.Category)

	got, ok = c.Get("/api/users")
	require.True(t, ok)
	assert.False(t, got.Matched)

	// /a.js was used more recently, so /api/users is evicted
	_, _ = c.Get("/a.js")
	c.Put("/b.css", Classification{Category: "Styles (.css)", Matched: true})
	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("/api/users")
	assert.False(t, ok)
}

func TestNewClassificationCache_InvalidSize(t *testing.T) {
	_, err := NewClassificationCache(0)
	assert.Error(t, err)
}
