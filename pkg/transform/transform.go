// Package transform turns a resolved path into the string the user sees.
// It encapsulates the flow: normalize → resolve symlink → folder reduction →
// separator styling → quoting → backslash escaping.
//
// The order is fixed. Escaping runs last so it doubles the backslashes that
// --no-posix introduced, and quoting runs after styling so the quote
// characters are never treated as separators.
package transform

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
)

// Transformer applies the pipeline against a filesystem
type Transformer struct {
	fs types.FS
}

// New creates a Transformer reading from fsys
func New(fsys types.FS) *Transformer {
	return &Transformer{fs: fsys}
}

// Apply runs the whole pipeline over resolved
func (t *Transformer) Apply(resolved string, flags types.TransformFlags) types.Transformed {
	logger := logging.GetLogger("transform")
	var warnings []types.Warning

	// Step 1: lexical normalization
	path := Normalize(resolved)

	// Step 2: one level of symlink resolution
	if flags.ResolveSymlink {
		var w *types.Warning
		path, w = t.resolveSymlink(path)
		if w != nil {
			warnings = append(warnings, *w)
		}
	}

	// Step 3: folder reduction
	if flags.FolderComponent {
		path = t.folderOf(path)
	}

	// Steps 4-6 only touch the display text
	display := StyleSeparators(path, flags.Separators())
	if flags.WrapQuote {
		display = Quote(display)
	}
	if flags.EscapeBackslash {
		display = EscapeBackslashes(display)
	}

	logger.Debug().
		Str("resolved", resolved).
		Str("path", path).
		Str("display", display).
		Int("warnings", len(warnings)).
		Msg("Path transformed")

	return types.Transformed{
		Display:  display,
		Path:     path,
		Warnings: warnings,
	}
}

// Normalize collapses "." and ".." segments and redundant separators
// without touching the filesystem. It is idempotent.
func Normalize(path string) string {
	return filepath.Clean(path)
}

// resolveSymlink replaces path with its link target when path is a symlink.
// Relative targets are taken relative to the link's directory.
func (t *Transformer) resolveSymlink(path string) (string, *types.Warning) {
	info, err := t.fs.Lstat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return path, &types.Warning{
				Code:    types.WarnDoesNotExist,
				Message: "path does not exist, symlink not resolved",
				Path:    path,
			}
		}
		return path, &types.Warning{
			Code:    types.WarnSymlinkRead,
			Message: "cannot inspect path: " + err.Error(),
			Path:    path,
		}
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return path, &types.Warning{
			Code:    types.WarnNotSymlink,
			Message: "path is not a symlink",
			Path:    path,
		}
	}

	target, err := t.fs.Readlink(path)
	if err != nil {
		return path, &types.Warning{
			Code:    types.WarnSymlinkRead,
			Message: "cannot read symlink: " + err.Error(),
			Path:    path,
		}
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// folderOf returns the parent of path when path is a regular file.
// Directories and missing paths come back unchanged.
func (t *Transformer) folderOf(path string) string {
	info, err := t.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return path
	}
	return filepath.Dir(path)
}

// StyleSeparators rewrites separators according to style
func StyleSeparators(display string, style types.SeparatorStyle) string {
	switch style {
	case types.SeparatorsForward:
		return strings.ReplaceAll(display, `\`, "/")
	case types.SeparatorsBackward:
		return strings.ReplaceAll(display, "/", `\`)
	default:
		return display
	}
}

// Quote wraps display in a single pair of double quotes
func Quote(display string) string {
	return `"` + display + `"`
}

// EscapeBackslashes doubles every backslash
func EscapeBackslashes(display string) string {
	return strings.ReplaceAll(display, `\`, `\\`)
}
