// Package clipboard replaces the clipboard contents with the display
// string.
//
// The system backend talks to the platform clipboard (pbcopy, xclip,
// xsel, wl-copy or the Win32 API). The osc52 backend asks the terminal
// emulator to do it, which also works over ssh.
package clipboard

import (
	"io"
	"os"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

// Backend names accepted by New
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// Backends lists every accepted backend name
var Backends = []string{BackendSystem, BackendOSC52}

// New returns the clipboard for backend. OSC 52 sequences are written to w.
func New(backend string, w io.Writer) (types.Clipboard, error) {
	switch backend {
	case BackendSystem, "":
		return &System{}, nil
	case BackendOSC52:
		return &OSC52{w: w, env: os.Getenv}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown clipboard backend %q", backend).
			WithDetail("valid", strings.Join(Backends, ", "))
	}
}

// System writes through the platform clipboard utilities
type System struct{}

// Write replaces the clipboard contents
func (c *System) Write(text string) error {
	if atotto.Unsupported {
		return errors.New(errors.ErrClipboard, "no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	if err := atotto.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "cannot write to the clipboard")
	}
	log := logging.GetLogger("clipboard")
	log.Debug().Str("backend", BackendSystem).Msg("Clipboard updated")
	return nil
}

// OSC52 writes a terminal clipboard escape sequence
type OSC52 struct {
	w   io.Writer
	env func(string) string
}

// NewOSC52 returns an OSC52 clipboard writing to w
func NewOSC52(w io.Writer, env func(string) string) *OSC52 {
	return &OSC52{w: w, env: env}
}

// Write emits the sequence, wrapped for tmux or screen when running inside
// one of them.
func (c *OSC52) Write(text string) error {
	seq := osc52.New(text)
	switch {
	case c.env("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.env("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.w); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "cannot write clipboard escape sequence")
	}
	log := logging.GetLogger("clipboard")
	log.Debug().Str("backend", BackendOSC52).Msg("Clipboard sequence written")
	return nil
}
