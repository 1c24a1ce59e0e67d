package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/here/pkg/testutil"
)

func TestOSFS(t *testing.T) {
	testutil.SkipOnWindows(t)

	dir := testutil.TempDir(t, "osfs")
	target := testutil.CreateFile(t, dir, "target.txt", "x")
	link := filepath.Join(dir, "link.txt")
	testutil.CreateSymlink(t, target, link)

	fsys := NewOS()

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "Lstat should not follow the link")

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "Stat should follow the link")

	dest, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, dest)
}

func TestOSFS_DanglingLink(t *testing.T) {
	testutil.SkipOnWindows(t)

	dir := testutil.TempDir(t, "osfs")
	sub := testutil.CreateDir(t, dir, "bin")
	link := filepath.Join(sub, "tool")
	testutil.CreateSymlink(t, "../missing/tool", link)

	fsys := NewOS()

	_, err := fsys.Stat(link)
	assert.True(t, os.IsNotExist(err))

	dest, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "../missing/tool", dest, "relative targets are returned verbatim")
}

func TestOSFS_ReadlinkOnRegularFile(t *testing.T) {
	dir := testutil.TempDir(t, "osfs")
	path := testutil.CreateFile(t, dir, "plain", "")

	_, err := NewOS().Readlink(path)
	assert.Error(t, err)
}
