//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keystroke

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

// DefaultDevice is the controlling terminal of the process
const DefaultDevice = "/dev/tty"

// Terminal pushes bytes into a terminal's input queue with TIOCSTI, so the
// shell that owns the terminal reads them once here exits.
type Terminal struct {
	device string
}

// New returns a typist for the controlling terminal
func New() types.Typist {
	return NewTerminal(DefaultDevice)
}

// NewTerminal returns a typist for the terminal device at path
func NewTerminal(device string) *Terminal {
	return &Terminal{device: device}
}

// Type queues text as if it had been typed
func (t *Terminal) Type(text string) error {
	return t.inject(text)
}

// Submit queues a carriage return
func (t *Terminal) Submit() error {
	return t.inject("\r")
}

func (t *Terminal) inject(text string) error {
	log := logging.GetLogger("keystroke")

	f, err := os.OpenFile(t.device, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrapf(err, errors.ErrKeystroke, "cannot open terminal %s", t.device)
	}
	defer func() { _ = f.Close() }()

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return errors.Newf(errors.ErrKeystroke, "%s is not a terminal", t.device)
	}

	log.Debug().Str("device", t.device).Int("bytes", len(text)).Msg("Injecting keystrokes")
	return queue(text, func(c byte) error { return pushByte(fd, c) })
}

// queue feeds text to push one byte at a time, stopping at the first failure
func queue(text string, push func(byte) error) error {
	for i := 0; i < len(text); i++ {
		if err := push(text[i]); err != nil {
			return errors.Wrap(err, errors.ErrKeystroke, "terminal rejected keystroke injection")
		}
	}
	return nil
}

// pushByte inserts c into the terminal's input queue. The kernel reads a
// single char through the pointer, so it must point at a byte.
func pushByte(fd int, c byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(unix.TIOCSTI), uintptr(unsafe.Pointer(&c)))
	if errno != 0 {
		return errno
	}
	return nil
}
