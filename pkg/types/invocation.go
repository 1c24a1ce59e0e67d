package types

import (
	"github.com/arthur-debert/here/pkg/errors"
)

// RawArgs is what the command-line surface collected before validation
type RawArgs struct {
	// Positional is the optional path segment or search term
	Positional    string
	HasPositional bool
	WhereSearch   bool
	Flags         TransformFlags
}

// Invocation is a validated request plus its flags. It is built once at
// the boundary and never mutated by the pipeline.
type Invocation struct {
	Request LocationRequest
	Flags   TransformFlags
}

// NewInvocation validates the flag combination and picks the request variant
func NewInvocation(raw RawArgs) (Invocation, error) {
	f := raw.Flags

	if f.PosixStyle && f.NoPosixStyle {
		return Invocation{}, errors.New(errors.ErrInvalidInput,
			"--posix and --no-posix cannot be used together")
	}
	if raw.WhereSearch && !raw.HasPositional {
		return Invocation{}, errors.New(errors.ErrInvalidInput,
			"--from-where requires a program to search for")
	}
	if f.SelectFirstOption && !raw.WhereSearch {
		return Invocation{}, errors.New(errors.ErrInvalidInput,
			"--select-first requires --from-where")
	}

	var req LocationRequest
	switch {
	case raw.WhereSearch:
		req = ProgramSearchRequest(raw.Positional)
	case raw.HasPositional:
		req = SegmentRequest(raw.Positional)
	default:
		req = CurrentDirectoryRequest()
	}

	return Invocation{Request: req, Flags: f}, nil
}
