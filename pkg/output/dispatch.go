package output

import (
	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/keystroke"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

// ChangeDirectory configures the typed directory change
type ChangeDirectory struct {
	Command string
	Submit  bool
}

// Dispatcher sends a transformed path to every enabled sink
type Dispatcher struct {
	renderer  *Renderer
	clipboard types.Clipboard
	typist    types.Typist
	cd        ChangeDirectory
}

// NewDispatcher wires the sinks. A nil clipboard or typist is reported as
// a sink failure only if the flags ask for it.
func NewDispatcher(r *Renderer, cb types.Clipboard, typist types.Typist, cd ChangeDirectory) *Dispatcher {
	return &Dispatcher{
		renderer:  r,
		clipboard: cb,
		typist:    typist,
		cd:        cd,
	}
}

// Dispatch runs clipboard, echo and directory change in that order and
// returns every sink failure. Clipboard and keystroke failures are
// warnings, reported as soon as their sink fails; an echo failure is fatal
// but only after the remaining sinks ran.
func (d *Dispatcher) Dispatch(result types.Transformed, flags types.TransformFlags) []error {
	log := logging.GetLogger("output.Dispatcher")
	var failures []error

	if flags.NoCopy {
		log.Debug().Msg("Clipboard skipped")
	} else if err := d.copy(result.Display); err != nil {
		log.Debug().Err(err).Msg("Clipboard sink failed")
		failures = d.fail(failures, err)
	}

	if err := d.renderer.Echo(result.Display); err != nil {
		failures = d.fail(failures, errors.Wrap(err, errors.ErrInternal, "cannot write to standard output"))
	}

	if flags.ChangeDirectory {
		if err := d.changeDirectory(result.Path); err != nil {
			log.Debug().Err(err).Msg("Keystroke sink failed")
			failures = d.fail(failures, err)
		}
	}

	return failures
}

// fail records err, printing it right away when it is only a warning
func (d *Dispatcher) fail(failures []error, err error) []error {
	if errors.IsWarning(err) {
		d.renderer.SinkWarning(err)
	}
	return append(failures, err)
}

func (d *Dispatcher) copy(display string) error {
	if d.clipboard == nil {
		return errors.New(errors.ErrClipboard, "no clipboard configured")
	}
	return d.clipboard.Write(display)
}

// changeDirectory types the command for the filesystem path, never the
// display string, so quoting and escaping flags cannot corrupt it.
func (d *Dispatcher) changeDirectory(path string) error {
	if d.typist == nil {
		return errors.New(errors.ErrKeystroke, "keystroke injection is unavailable")
	}

	line := keystroke.CdCommand(d.cd.Command, path)
	log := logging.GetLogger("output.Dispatcher")
	log.Debug().Str("line", line).Msg("Typing directory change")

	if err := d.typist.Type(line); err != nil {
		return asKeystrokeError(err)
	}
	if !d.cd.Submit {
		return nil
	}
	if err := d.typist.Submit(); err != nil {
		return asKeystrokeError(err)
	}
	return nil
}

func asKeystrokeError(err error) error {
	if errors.IsErrorCode(err, errors.ErrKeystroke) {
		return err
	}
	return errors.Wrap(err, errors.ErrKeystroke, "keystroke injection failed")
}
