package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/srap/pkg/ui/styles"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Warning", "Action", "Path", "Success", "Error"} {
		t.Run(name, func(t *testing.T) {
			_, ok := styles.StyleRegistry[name]
			assert.True(t, ok, "style %s should exist", name)
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		style   string
		want    string
	}{
		{"warning is bold red", termenv.ANSI, "Warning", "\x1b[31;1mx\x1b[0m"},
		{"action is bold magenta", termenv.ANSI, "Action", "\x1b[35;1mx\x1b[0m"},
		{"path is cyan", termenv.ANSI, "Path", "\x1b[36mx\x1b[0m"},
		{"success is green", termenv.ANSI, "Success", "\x1b[32mx\x1b[0m"},
		{"ascii strips styling", termenv.Ascii, "Warning", "x"},
		{"unknown style is plain", termenv.ANSI, "Nope", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.Render(tt.profile, tt.style, "x"))
		})
	}
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		// restore the embedded definitions for other tests
		_ = styles.LoadStyles(filepath.Join(".", "styles.yaml"))
	})

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  Path:\n    foreground: \"4\"\n    underline: true\n"), 0644))

	require.NoError(t, styles.LoadStyles(path))
	assert.Equal(t, "\x1b[34;4mx\x1b[0m", styles.Render(termenv.ANSI, "Path", "x"))
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
	assert.Error(t, styles.LoadStylesFromData([]byte("other: 1\n")))
}
