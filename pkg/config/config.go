package config

import (
	"github.com/arthur-debert/here/pkg/clipboard"
	"github.com/arthur-debert/here/pkg/errors"
)

// Search backends
const (
	SearchBackendCommand = "command"
	SearchBackendPath    = "path"
)

// Config is the decoded configuration
type Config struct {
	Search          Search          `koanf:"search" toml:"search"`
	Clipboard       Clipboard       `koanf:"clipboard" toml:"clipboard"`
	ChangeDirectory ChangeDirectory `koanf:"change_directory" toml:"change_directory"`
	Prompt          Prompt          `koanf:"prompt" toml:"prompt"`
	Styles          Styles          `koanf:"styles" toml:"styles"`
}

// Search selects how programs are located
type Search struct {
	Backend string `koanf:"backend" toml:"backend"`
	Command string `koanf:"command" toml:"command"`
}

// Clipboard selects the clipboard backend
type Clipboard struct {
	Backend string `koanf:"backend" toml:"backend"`
}

// ChangeDirectory shapes the typed directory change
type ChangeDirectory struct {
	Command string `koanf:"command" toml:"command"`
	Submit  bool   `koanf:"submit" toml:"submit"`
}

// Prompt configures the disambiguation picker
type Prompt struct {
	Message  string `koanf:"message" toml:"message"`
	PageSize int    `koanf:"page_size" toml:"page_size"`
}

// Styles points at a custom colour theme
type Styles struct {
	File string `koanf:"file" toml:"file"`
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	switch c.Search.Backend {
	case SearchBackendCommand, SearchBackendPath:
	default:
		return errors.Newf(errors.ErrConfigValid, "search.backend must be %q or %q, got %q",
			SearchBackendCommand, SearchBackendPath, c.Search.Backend)
	}

	valid := false
	for _, b := range clipboard.Backends {
		if c.Clipboard.Backend == b {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigValid, "clipboard.backend must be one of %v, got %q",
			clipboard.Backends, c.Clipboard.Backend)
	}

	if c.ChangeDirectory.Command == "" {
		return errors.New(errors.ErrConfigValid, "change_directory.command must not be empty")
	}
	if c.Prompt.Message == "" {
		return errors.New(errors.ErrConfigValid, "prompt.message must not be empty")
	}
	if c.Prompt.PageSize < 1 {
		return errors.Newf(errors.ErrConfigValid, "prompt.page_size must be at least 1, got %d", c.Prompt.PageSize)
	}

	return nil
}
