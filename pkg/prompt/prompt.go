// Package prompt asks the user to pick one of several candidate paths.
//
// The picker runs on the terminal's stderr so stdout stays clean for the
// echoed path. With no terminal available, Select fails with
// PROMPT_UNAVAILABLE rather than guessing.
package prompt

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
)

// Options configures a Prompter
type Options struct {
	In       *os.File
	Out      *os.File
	PageSize int
	NoColor  bool
}

// Prompter implements types.Prompter with a bubbletea list
type Prompter struct {
	in       *os.File
	out      *os.File
	pageSize int
	noColor  bool
}

// New creates a Prompter, defaulting to stdin and stderr
func New(opts Options) *Prompter {
	p := &Prompter{
		in:       opts.In,
		out:      opts.Out,
		pageSize: opts.PageSize,
		noColor:  opts.NoColor,
	}
	if p.in == nil {
		p.in = os.Stdin
	}
	if p.out == nil {
		p.out = os.Stderr
	}
	return p
}

// Select blocks until the user chooses an option or skips
func (p *Prompter) Select(message string, options []string) (string, error) {
	log := logging.GetLogger("prompt")

	if !term.IsTerminal(int(p.in.Fd())) || !term.IsTerminal(int(p.out.Fd())) {
		return "", errors.New(errors.ErrPromptUnavailable, "cannot ask which path to use: not running in a terminal").
			WithDetail("candidates", len(options))
	}

	r := lipgloss.NewRenderer(p.out)
	if p.noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	log.Debug().Int("options", len(options)).Msg("Starting selection prompt")
	program := tea.NewProgram(
		NewModel(message, options, p.pageSize, r),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPromptUnavailable, "selection prompt failed")
	}

	model, ok := final.(Model)
	if !ok {
		return "", errors.Newf(errors.ErrInternal, "unexpected prompt model %T", final)
	}

	choice, ok := model.Choice()
	if !ok {
		log.Debug().Msg("Selection skipped")
		return "", errors.New(errors.ErrAborted, "no path selected")
	}

	log.Debug().Str("choice", choice).Msg("Selection made")
	return choice, nil
}
