package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	r, err := NewMarkdownRenderer(80, "dark")
	require.NoError(t, err)
	result, err := r.Render("Hello **world**")
	require.NoError(t, err)
	assert.NotEmpty(t, result)
	assert.Contains(t, result, "world")
}

func TestRenderMarkdownStyles(t *testing.T) {
	for _, style := range []string{"light", "notty", "auto"} {
		r, err := NewMarkdownRenderer(60, style)
		require.NoError(t, err, style)
		result, err := r.Render("- Black oil simulation")
		require.NoError(t, err)
		assert.Contains(t, result, "Black")
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	r, err := NewMarkdownRenderer(80, "dark")
	require.NoError(t, err)
	result, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRenderMarkdownNilRenderer(t *testing.T) {
	var r *MarkdownRenderer
	result, err := r.Render("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", result)
}
