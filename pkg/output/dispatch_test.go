package output

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/testutil"
	"github.com/arthur-debert/here/pkg/types"
)

func TestDispatch_AllSinks(t *testing.T) {
	r, out, _ := newTestRenderer(true)
	cb := &testutil.MockClipboard{}
	typist := &testutil.MockTypist{}
	d := NewDispatcher(r, cb, typist, ChangeDirectory{Command: "cd", Submit: true})

	result := types.Transformed{Display: `"/opt/my tool"`, Path: "/opt/my tool"}
	failures := d.Dispatch(result, types.TransformFlags{ChangeDirectory: true})

	assert.Empty(t, failures)
	assert.Equal(t, []string{`"/opt/my tool"`}, cb.Contents)
	assert.Equal(t, "\"/opt/my tool\"\n", out.String())
	require.Len(t, typist.Typed, 1)
	assert.Contains(t, typist.Typed[0], `"/opt/my tool"`, "the cd line quotes the filesystem path")
	assert.NotContains(t, typist.Typed[0], `\"`, "display quoting does not leak into the cd line")
	assert.Equal(t, 1, typist.Submits)
}

func TestDispatch_NoCopy(t *testing.T) {
	r, out, _ := newTestRenderer(true)
	cb := &testutil.MockClipboard{}
	d := NewDispatcher(r, cb, nil, ChangeDirectory{})

	failures := d.Dispatch(types.Transformed{Display: "/tmp", Path: "/tmp"}, types.TransformFlags{NoCopy: true})

	assert.Empty(t, failures)
	assert.Empty(t, cb.Contents, "clipboard must not be touched")
	assert.Equal(t, "/tmp\n", out.String(), "echo happens exactly once")
}

func TestDispatch_ClipboardFailureDoesNotStopOtherSinks(t *testing.T) {
	r, out, _ := newTestRenderer(true)
	cb := &testutil.MockClipboard{Err: errors.New(errors.ErrClipboard, "unavailable")}
	typist := &testutil.MockTypist{}
	d := NewDispatcher(r, cb, typist, ChangeDirectory{Command: "cd", Submit: true})

	failures := d.Dispatch(types.Transformed{Display: "/tmp", Path: "/tmp"}, types.TransformFlags{ChangeDirectory: true})

	require.Len(t, failures, 1)
	assert.True(t, errors.IsWarning(failures[0]))
	assert.Equal(t, "/tmp\n", out.String())
	assert.Len(t, typist.Typed, 1)
}

func TestDispatch_KeystrokeFailureIsWarning(t *testing.T) {
	r, _, _ := newTestRenderer(true)
	typist := &testutil.MockTypist{TypeErr: stderrors.New("no tty")}
	d := NewDispatcher(r, &testutil.MockClipboard{}, typist, ChangeDirectory{Submit: true})

	failures := d.Dispatch(types.Transformed{Display: "/tmp", Path: "/tmp"}, types.TransformFlags{ChangeDirectory: true})

	require.Len(t, failures, 1)
	assert.True(t, errors.IsErrorCode(failures[0], errors.ErrKeystroke))
	assert.Equal(t, 0, typist.Submits, "no submit after a failed type")
}

func TestDispatch_SubmitDisabled(t *testing.T) {
	r, _, _ := newTestRenderer(true)
	typist := &testutil.MockTypist{}
	d := NewDispatcher(r, &testutil.MockClipboard{}, typist, ChangeDirectory{Command: "pushd"})

	failures := d.Dispatch(types.Transformed{Display: "/tmp", Path: "/tmp"}, types.TransformFlags{ChangeDirectory: true})

	assert.Empty(t, failures)
	require.Len(t, typist.Typed, 1)
	assert.Contains(t, typist.Typed[0], "pushd ")
	assert.Equal(t, 0, typist.Submits)
}

func TestDispatch_NoChangeDirectory(t *testing.T) {
	r, _, _ := newTestRenderer(true)
	typist := &testutil.MockTypist{}
	d := NewDispatcher(r, &testutil.MockClipboard{}, typist, ChangeDirectory{Submit: true})

	assert.Empty(t, d.Dispatch(types.Transformed{Display: "/tmp", Path: "/tmp"}, types.TransformFlags{}))
	assert.Empty(t, typist.Typed)
}

func TestDispatch_WarningsFollowSinkOrder(t *testing.T) {
	var console bytes.Buffer
	r := NewRenderer(&console, &console, true)
	cb := &testutil.MockClipboard{Err: errors.New(errors.ErrClipboard, "unavailable")}
	typist := &testutil.MockTypist{TypeErr: stderrors.New("no tty")}
	d := NewDispatcher(r, cb, typist, ChangeDirectory{Command: "cd"})

	failures := d.Dispatch(types.Transformed{Display: "/tmp", Path: "/tmp"}, types.TransformFlags{ChangeDirectory: true})

	require.Len(t, failures, 2)
	assert.Equal(t,
		"Warning: unavailable\n/tmp\nWarning: keystroke injection failed: no tty\n",
		console.String(),
		"each warning is printed when its sink fails")
}
