//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keystroke

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/testutil"
)

func TestTerminal_MissingDevice(t *testing.T) {
	typist := NewTerminal(filepath.Join(t.TempDir(), "no-such-tty"))

	err := typist.Type("cd /tmp")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrKeystroke))
	assert.True(t, errors.IsWarning(err))
}

func TestTerminal_NotATerminal(t *testing.T) {
	dir := testutil.TempDir(t, "keystroke")
	path := testutil.CreateFile(t, dir, "plain", "")

	err := NewTerminal(path).Submit()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrKeystroke))
	assert.Contains(t, err.Error(), "not a terminal")
}

func TestQueue_PushesEveryByte(t *testing.T) {
	var pushed []byte
	err := queue("cd /tmp/é\r", func(c byte) error {
		pushed = append(pushed, c)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("cd /tmp/é\r"), pushed, "multi-byte runes go out byte by byte")
}

func TestQueue_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	err := queue("abc", func(c byte) error {
		calls++
		if c == 'b' {
			return stderrors.New("EIO")
		}
		return nil
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrKeystroke))
	assert.Equal(t, 2, calls)
}
