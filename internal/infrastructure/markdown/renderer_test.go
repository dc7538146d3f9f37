package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("# Oak\n\nSolid **oak** chair.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Oak</h1>")
	assert.Contains(t, out, "<strong>oak</strong>")

	out, err = r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestRenderSanitizes(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("Hello <script>alert(1)</script> [link](https://example.com) <img src=\"/a.jpg\" onerror=\"x()\">")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, `rel="nofollow"`)
	assert.Contains(t, out, `src="/a.jpg"`)

	out, err = r.Render("[x](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
}

func TestRenderBlank(t *testing.T) {
	out, err := NewRenderer().Render("  \n ")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
