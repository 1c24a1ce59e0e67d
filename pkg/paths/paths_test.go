package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFile(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.FromSlash("/custom/config"))

	assert.Equal(t, filepath.FromSlash("/custom/config/here/config.toml"), ConfigFile())
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.FromSlash("/custom/config"))
	t.Setenv(EnvConfigDir, filepath.FromSlash("/elsewhere"))

	assert.Equal(t, filepath.FromSlash("/elsewhere/config.toml"), ConfigFile())
}

func TestLogFile(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", filepath.FromSlash("/custom/state"))

	assert.Equal(t, filepath.FromSlash("/custom/state/here/here.log"), LogFile())
}

func TestStateDirOverride(t *testing.T) {
	t.Setenv(EnvStateDir, filepath.FromSlash("/var/tmp/here-state"))

	assert.Equal(t, filepath.FromSlash("/var/tmp/here-state"), StateDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.config/here", filepath.Join(home, ".config", "here")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"rel/~", "rel/~"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
