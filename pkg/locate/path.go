package locate

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/here/pkg/types"
)

// PathLocator searches the directories of a PATH-style list directly
type PathLocator struct {
	fs      types.FS
	dirs    []string
	exts    []string
	windows bool
}

// NewPathLocator builds a locator over the process PATH (and PATHEXT on Windows)
func NewPathLocator(fsys types.FS) *PathLocator {
	return NewPathLocatorFor(fsys, os.Getenv("PATH"), os.Getenv("PATHEXT"), runtime.GOOS == "windows")
}

// NewPathLocatorFor builds a locator over an explicit PATH and PATHEXT.
// On non-Windows platforms pathExt is ignored and the execute bit decides.
func NewPathLocatorFor(fsys types.FS, pathList, pathExt string, windows bool) *PathLocator {
	l := &PathLocator{fs: fsys, windows: windows}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		l.dirs = append(l.dirs, dir)
	}

	if windows {
		if pathExt == "" {
			pathExt = ".COM;.EXE;.BAT;.CMD"
		}
		for _, ext := range strings.Split(pathExt, ";") {
			if ext != "" {
				l.exts = append(l.exts, strings.ToLower(ext))
			}
		}
	}

	return l
}

// Locate returns every matching executable in PATH order, without duplicates
func (l *PathLocator) Locate(ctx context.Context, term string) ([]types.Candidate, error) {
	var candidates []types.Candidate
	seen := make(map[string]bool)

	for _, dir := range l.dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, name := range l.namesFor(term) {
			full := filepath.Join(dir, name)
			if seen[full] || !l.isExecutable(full) {
				continue
			}
			seen[full] = true
			candidates = append(candidates, types.Candidate(full))
		}
	}

	return candidates, nil
}

// namesFor expands term with PATHEXT suffixes on Windows
func (l *PathLocator) namesFor(term string) []string {
	if !l.windows || filepath.Ext(term) != "" {
		return []string{term}
	}
	names := make([]string, 0, len(l.exts))
	for _, ext := range l.exts {
		names = append(names, term+ext)
	}
	return names
}

func (l *PathLocator) isExecutable(path string) bool {
	info, err := l.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if l.windows {
		return true
	}
	return info.Mode()&0111 != 0
}
