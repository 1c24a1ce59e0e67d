//go:build !windows && !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package keystroke

import (
	"runtime"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/types"
)

// Terminal reports that keystroke injection is unavailable
type Terminal struct{}

// New returns a typist that always fails
func New() types.Typist {
	return &Terminal{}
}

// Type always fails on this platform
func (t *Terminal) Type(string) error {
	return errors.Newf(errors.ErrKeystroke, "keystroke injection is not supported on %s", runtime.GOOS)
}

// Submit always fails on this platform
func (t *Terminal) Submit() error {
	return t.Type("")
}
