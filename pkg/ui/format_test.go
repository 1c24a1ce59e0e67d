package ui_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/here/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{"auto format", ui.FormatAuto, "auto"},
		{"terminal format", ui.FormatTerminal, "term"},
		{"text format", ui.FormatText, "text"},
		{"unknown format", ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.False(t, ui.IsTerminal(f))
}

func TestDetectFormat_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestResolve(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.FormatTerminal.Resolve(f, true), "no-color wins over a forced format")
	assert.Equal(t, ui.FormatTerminal, ui.FormatTerminal.Resolve(f, false))
	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(f, false))
	assert.False(t, ui.IsTerminal(nil))
}
