package core

import (
	"os"

	"github.com/arthur-debert/here/pkg/clipboard"
	"github.com/arthur-debert/here/pkg/config"
	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/filesystem"
	"github.com/arthur-debert/here/pkg/keystroke"
	"github.com/arthur-debert/here/pkg/locate"
	"github.com/arthur-debert/here/pkg/output"
	"github.com/arthur-debert/here/pkg/output/styles"
	"github.com/arthur-debert/here/pkg/paths"
	"github.com/arthur-debert/here/pkg/prompt"
	"github.com/arthur-debert/here/pkg/types"
)

// Streams are the process's standard files
type Streams struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// StdStreams returns the real standard files
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Build wires the production collaborators described by cfg. With plain
// set, nothing prints escape sequences. A configured styles file replaces
// the built-in theme before any renderer is created.
func Build(cfg *config.Config, streams Streams, plain bool) (Deps, error) {
	if cfg.Styles.File != "" {
		path := paths.ExpandHome(cfg.Styles.File)
		if err := styles.LoadStyles(path); err != nil {
			return Deps{}, errors.Wrap(err, errors.ErrConfigLoad, "cannot load styles").
				WithDetail("path", path)
		}
	}

	fsys := filesystem.NewOS()

	locator, err := NewLocator(cfg.Search, fsys)
	if err != nil {
		return Deps{}, err
	}

	cb, err := clipboard.New(cfg.Clipboard.Backend, streams.Stderr)
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		FS:      fsys,
		Locator: locator,
		Prompter: prompt.New(prompt.Options{
			In:       streams.Stdin,
			Out:      streams.Stderr,
			PageSize: cfg.Prompt.PageSize,
			NoColor:  plain,
		}),
		PromptMessage: cfg.Prompt.Message,
		Renderer:      output.NewRenderer(streams.Stdout, streams.Stderr, plain),
		Clipboard:     cb,
		Typist:        keystroke.New(),
		ChangeDirectory: output.ChangeDirectory{
			Command: cfg.ChangeDirectory.Command,
			Submit:  cfg.ChangeDirectory.Submit,
		},
	}, nil
}

// NewLocator picks the program search backend
func NewLocator(search config.Search, fsys types.FS) (types.Locator, error) {
	if search.Backend == config.SearchBackendPath {
		return locate.NewPathLocator(fsys), nil
	}
	l, err := locate.NewCommandLocator(search.Command)
	if err != nil {
		return nil, err
	}
	return l, nil
}
