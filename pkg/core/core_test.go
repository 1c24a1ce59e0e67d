package core

import (
	"bytes"
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/output"
	"github.com/arthur-debert/here/pkg/testutil"
	"github.com/arthur-debert/here/pkg/types"
)

type harness struct {
	fs        *testutil.MemoryFS
	locator   *testutil.MockLocator
	prompter  *testutil.MockPrompter
	clipboard *testutil.MockClipboard
	typist    *testutil.MockTypist
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

// newHarness needs posix paths for the in-memory filesystem
func newHarness(t *testing.T) *harness {
	t.Helper()
	testutil.SkipOnWindows(t)

	fsys := testutil.NewMemoryFS().
		AddDir("/home/me/projects").
		AddFile("/opt/go/bin/go", 100).
		AddSymlink("/opt/go/bin/go", "/usr/local/bin/go")
	require.NoError(t, fsys.Chdir("/home/me"))

	return &harness{
		fs:        fsys,
		locator:   &testutil.MockLocator{},
		prompter:  &testutil.MockPrompter{},
		clipboard: &testutil.MockClipboard{},
		typist:    &testutil.MockTypist{},
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
	}
}

func (h *harness) deps() Deps {
	return Deps{
		FS:              h.fs,
		Getwd:           h.fs.Getwd,
		Locator:         h.locator,
		Prompter:        h.prompter,
		Renderer:        output.NewRenderer(h.stdout, h.stderr, true),
		Clipboard:       h.clipboard,
		Typist:          h.typist,
		ChangeDirectory: output.ChangeDirectory{Command: "cd", Submit: true},
	}
}

func invocation(t *testing.T, raw types.RawArgs) types.Invocation {
	t.Helper()
	inv, err := types.NewInvocation(raw)
	require.NoError(t, err)
	return inv
}

func TestRun_CurrentDirectory(t *testing.T) {
	h := newHarness(t)

	result, err := Run(context.Background(), invocation(t, types.RawArgs{}), h.deps())
	require.NoError(t, err)

	assert.Equal(t, "/home/me", result.Transformed.Display)
	assert.Equal(t, []string{"/home/me"}, h.clipboard.Contents)
	assert.Equal(t, "/home/me\n", h.stdout.String())
	assert.Empty(t, h.typist.Typed)
	assert.Empty(t, h.stderr.String())
}

func TestRun_SegmentIsNormalized(t *testing.T) {
	h := newHarness(t)

	inv := invocation(t, types.RawArgs{
		Positional:    "./projects/../projects/",
		HasPositional: true,
		Flags:         types.TransformFlags{WrapQuote: true},
	})
	result, err := Run(context.Background(), inv, h.deps())
	require.NoError(t, err)

	assert.Equal(t, "/home/me/projects", result.Transformed.Path)
	assert.Equal(t, "\"/home/me/projects\"\n", h.stdout.String())
}

func TestRun_SearchResolveFolderChangeDirectory(t *testing.T) {
	h := newHarness(t)
	h.locator = testutil.StaticLocator("/usr/local/bin/go")

	inv := invocation(t, types.RawArgs{
		Positional:    "go",
		HasPositional: true,
		WhereSearch:   true,
		Flags: types.TransformFlags{
			ResolveSymlink:  true,
			FolderComponent: true,
			ChangeDirectory: true,
			NoCopy:          true,
		},
	})
	result, err := Run(context.Background(), inv, h.deps())
	require.NoError(t, err)

	assert.Equal(t, "/opt/go/bin", result.Transformed.Path)
	assert.Empty(t, h.clipboard.Contents)
	assert.Equal(t, []string{`cd "/opt/go/bin"`}, h.typist.Typed)
	assert.Equal(t, 1, h.typist.Submits)
}

func TestRun_SearchNotFound(t *testing.T) {
	h := newHarness(t)

	inv := invocation(t, types.RawArgs{Positional: "nope", HasPositional: true, WhereSearch: true})
	result, err := Run(context.Background(), inv, h.deps())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Empty(t, h.stdout.String(), "nothing is echoed when resolution fails")
	assert.Empty(t, h.clipboard.Contents)
}

func TestRun_PromptAbort(t *testing.T) {
	h := newHarness(t)
	h.locator = testutil.StaticLocator("/a/go", "/b/go")
	h.prompter.SelectFunc = func(string, []string) (string, error) {
		return "", errors.New(errors.ErrAborted, "no path selected")
	}

	inv := invocation(t, types.RawArgs{Positional: "go", HasPositional: true, WhereSearch: true})
	_, err := Run(context.Background(), inv, h.deps())

	require.Error(t, err)
	assert.True(t, errors.IsAbort(err))
	assert.Empty(t, h.stdout.String())
}

func TestRun_WarningsDoNotFail(t *testing.T) {
	h := newHarness(t)
	h.clipboard.Err = errors.New(errors.ErrClipboard, "clipboard unavailable")

	inv := invocation(t, types.RawArgs{
		Positional:    "projects",
		HasPositional: true,
		Flags:         types.TransformFlags{ResolveSymlink: true},
	})
	result, err := Run(context.Background(), inv, h.deps())
	require.NoError(t, err)

	assert.Len(t, result.Transformed.Warnings, 1, "projects is not a symlink")
	assert.Len(t, result.SinkWarnings, 1)
	assert.Equal(t, "/home/me/projects\n", h.stdout.String(), "echo still happens")
	assert.Contains(t, h.stderr.String(), "clipboard unavailable")
	assert.Contains(t, h.stderr.String(), "Warning:")
	assert.Contains(t, h.stderr.String(), "path is not a symlink: /home/me/projects")
}

func TestRun_WorkingDirectoryFailure(t *testing.T) {
	h := newHarness(t)
	h.fs.WithError("/home/me", fs.ErrPermission)

	_, err := Run(context.Background(), invocation(t, types.RawArgs{}), h.deps())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWorkingDir))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, fs.ErrClosed }

func TestRun_EchoFailureIsFatalAfterAllSinks(t *testing.T) {
	h := newHarness(t)
	h.clipboard.Err = errors.New(errors.ErrClipboard, "clipboard unavailable")
	deps := h.deps()
	deps.Renderer = output.NewRenderer(brokenWriter{}, h.stderr, true)

	inv := invocation(t, types.RawArgs{Flags: types.TransformFlags{ChangeDirectory: true}})
	result, err := Run(context.Background(), inv, deps)

	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	require.NotNil(t, result)
	assert.Len(t, result.SinkWarnings, 1, "the clipboard failure stays a warning")
	assert.Equal(t, []string{`cd "/home/me"`}, h.typist.Typed, "the keystroke sink still runs")
}
