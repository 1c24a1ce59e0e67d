// Package resolve turns a LocationRequest into an un-normalized path.
//
// The working directory and segment modes never fail once the working
// directory is readable. Program search asks a types.Locator for
// candidates and, when there is more than one, either takes the first or
// lets a types.Prompter pick.
package resolve

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

// DefaultPromptMessage is shown above the candidate list
const DefaultPromptMessage = "Select a path:"

// Options wires the resolver to its collaborators
type Options struct {
	// Getwd returns the working directory; defaults to os.Getwd
	Getwd         func() (string, error)
	Locator       types.Locator
	Prompter      types.Prompter
	PromptMessage string
}

// Resolver resolves location requests
type Resolver struct {
	getwd         func() (string, error)
	locator       types.Locator
	prompter      types.Prompter
	promptMessage string
}

// New creates a Resolver from opts
func New(opts Options) *Resolver {
	r := &Resolver{
		getwd:         opts.Getwd,
		locator:       opts.Locator,
		prompter:      opts.Prompter,
		promptMessage: opts.PromptMessage,
	}
	if r.getwd == nil {
		r.getwd = os.Getwd
	}
	if r.promptMessage == "" {
		r.promptMessage = DefaultPromptMessage
	}
	return r
}

// Resolve produces the starting path for req
func (r *Resolver) Resolve(ctx context.Context, req types.LocationRequest, selectFirst bool) (string, error) {
	logger := logging.GetLogger("resolve")
	logger.Debug().Str("request", req.String()).Bool("selectFirst", selectFirst).Msg("Resolving location")

	switch req.Kind {
	case types.CurrentDirectory:
		return r.workingDir()
	case types.Segment:
		cwd, err := r.workingDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, req.Text), nil
	case types.ProgramSearch:
		return r.search(ctx, req.Text, selectFirst)
	default:
		return "", errors.Newf(errors.ErrInternal, "unknown request kind %d", req.Kind)
	}
}

func (r *Resolver) workingDir() (string, error) {
	cwd, err := r.getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrWorkingDir, "cannot read current working directory")
	}
	return cwd, nil
}

// search asks the locator for term and narrows the answer to one path
func (r *Resolver) search(ctx context.Context, term string, selectFirst bool) (string, error) {
	logger := logging.GetLogger("resolve")

	if term == "" || term == "." {
		return "", errors.Newf(errors.ErrInvalidSearchTerm,
			"a program name is required to search, got %q", term)
	}
	if r.locator == nil {
		return "", errors.New(errors.ErrInternal, "no locator configured")
	}

	done := logging.LogOperationStart(logger, "locate")
	candidates, err := r.locator.Locate(ctx, term)
	done()
	if err != nil {
		return "", err
	}

	switch len(candidates) {
	case 0:
		return "", errors.Newf(errors.ErrNotFound, "no program found for %q", term).
			WithDetail("term", term)
	case 1:
		return string(candidates[0]), nil
	}

	if selectFirst {
		logger.Info().
			Int("candidates", len(candidates)).
			Str("selected", string(candidates[0])).
			Msg("Multiple matches, selecting first")
		return string(candidates[0]), nil
	}

	return r.choose(term, candidates)
}

// choose runs the interactive prompt over candidates
func (r *Resolver) choose(term string, candidates []types.Candidate) (string, error) {
	if r.prompter == nil {
		return "", errors.New(errors.ErrPromptUnavailable, "multiple matches and no prompt available")
	}

	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = string(c)
	}

	choice, err := r.prompter.Select(r.promptMessage, options)
	if err != nil {
		if errors.IsAbort(err) {
			return "", err
		}
		return "", errors.Wrap(err, errors.ErrPromptUnavailable, "selection prompt failed").
			WithDetail("term", term)
	}
	return choice, nil
}
