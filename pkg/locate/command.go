package locate

import (
	"context"
	stderrors "errors"
	"os/exec"
	"runtime"

	"github.com/google/shlex"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

// CommandLocator runs an external command with the search term appended
// as its last argument
type CommandLocator struct {
	argv []string
}

// DefaultCommand returns the locate command line for the running platform
func DefaultCommand() string {
	return defaultCommandFor(runtime.GOOS)
}

func defaultCommandFor(goos string) string {
	if goos == "windows" {
		return "where"
	}
	return "which -a"
}

// NewCommandLocator parses commandLine with shell-like quoting rules.
// An empty commandLine selects DefaultCommand.
func NewCommandLocator(commandLine string) (*CommandLocator, error) {
	if commandLine == "" {
		commandLine = DefaultCommand()
	}

	argv, err := shlex.Split(commandLine)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid locate command %q", commandLine)
	}
	if len(argv) == 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "invalid locate command %q", commandLine)
	}

	return &CommandLocator{argv: argv}, nil
}

// Argv returns the command and its fixed arguments
func (l *CommandLocator) Argv() []string {
	return append([]string(nil), l.argv...)
}

// Locate runs the command and blocks until it exits.
// A non-zero exit status is not an error: utilities like `where` and
// `which` use it to say "nothing found", and the empty output already
// carries that.
func (l *CommandLocator) Locate(ctx context.Context, term string) ([]types.Candidate, error) {
	logger := logging.GetLogger("locate")

	args := append(l.Argv()[1:], term)
	logging.LogCommand(l.argv[0], args)

	cmd := exec.CommandContext(ctx, l.argv[0], args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.Wrapf(err, errors.ErrLocateFailed, "cannot run %s", l.argv[0]).
				WithDetail("term", term)
		}
		logger.Debug().
			Int("exitCode", exitErr.ExitCode()).
			Str("stderr", string(exitErr.Stderr)).
			Msg("Locate command exited with non-zero status")
	}

	candidates := ParseCandidates(string(out))
	logger.Debug().
		Str("term", term).
		Int("candidates", len(candidates)).
		Msg("Locate command finished")

	return candidates, nil
}
