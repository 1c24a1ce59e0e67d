package core

import (
	"context"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/output"
	"github.com/arthur-debert/here/pkg/resolve"
	"github.com/arthur-debert/here/pkg/transform"
	"github.com/arthur-debert/here/pkg/types"
)

// Deps holds every collaborator an invocation talks to
type Deps struct {
	FS            types.FS
	Getwd         func() (string, error)
	Locator       types.Locator
	Prompter      types.Prompter
	PromptMessage string

	Renderer        *output.Renderer
	Clipboard       types.Clipboard
	Typist          types.Typist
	ChangeDirectory output.ChangeDirectory
}

// Result describes a completed invocation
type Result struct {
	Resolved    string
	Transformed types.Transformed
	// SinkWarnings are sink failures that did not end the invocation
	SinkWarnings []error
}

// Run executes the pipeline for inv. The returned error is fatal; warnings
// have already been reported through deps.Renderer as they happened.
func Run(ctx context.Context, inv types.Invocation, deps Deps) (*Result, error) {
	log := logging.GetLogger("core")
	defer logging.LogOperationStart(log, "pipeline")()

	resolver := resolve.New(resolve.Options{
		Getwd:         deps.Getwd,
		Locator:       deps.Locator,
		Prompter:      deps.Prompter,
		PromptMessage: deps.PromptMessage,
	})

	resolved, err := resolver.Resolve(ctx, inv.Request, inv.Flags.SelectFirstOption)
	if err != nil {
		log.Debug().Err(err).Str("request", inv.Request.String()).Msg("Resolution failed")
		return nil, err
	}

	transformed := transform.New(deps.FS).Apply(resolved, inv.Flags)
	for _, w := range transformed.Warnings {
		deps.Renderer.Warning(w)
	}

	result := &Result{Resolved: resolved, Transformed: transformed}

	dispatcher := output.NewDispatcher(deps.Renderer, deps.Clipboard, deps.Typist, deps.ChangeDirectory)
	var fatal error
	for _, failure := range dispatcher.Dispatch(transformed, inv.Flags) {
		if !errors.IsFatal(failure) {
			result.SinkWarnings = append(result.SinkWarnings, failure)
			continue
		}
		if fatal == nil {
			fatal = failure
		}
	}

	log.Info().
		Str("request", inv.Request.String()).
		Str("path", transformed.Path).
		Int("warnings", len(transformed.Warnings)+len(result.SinkWarnings)).
		Msg("Invocation finished")
	return result, fatal
}
