package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// maxLinkHops bounds symlink following in Stat, mirroring ELOOP
const maxLinkHops = 40

// MemoryFS implements types.FS interface with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode
	cwd   string

	// Error injection
	errorPaths map[string]error
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	size     int64
	isDir    bool
	isLink   bool
	linkDest string
}

// NewMemoryFS creates a new in-memory filesystem with only a root directory
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:    "/",
		mode:    0755 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		cwd:        "/",
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute form
func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.cwd, path)
	}
	return filepath.Clean(path)
}

// getNode retrieves a node at the given path without following links
func (m *MemoryFS) getNode(op, path string) (*fileNode, error) {
	path = m.normalizePath(path)

	if err, ok := m.errorPaths[path]; ok {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}

	return node, nil
}

// ensureParents creates every missing ancestor directory of path
func (m *MemoryFS) ensureParents(path string) {
	dir := filepath.Dir(path)
	var missing []string
	for {
		if _, ok := m.files[dir]; ok {
			break
		}
		missing = append(missing, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for i := len(missing) - 1; i >= 0; i-- {
		m.files[missing[i]] = &fileNode{
			name:    filepath.Base(missing[i]),
			mode:    0755 | os.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
}

// AddFile creates a regular file, creating parent directories as needed
func (m *MemoryFS) AddFile(path string, size int64) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalizePath(path)
	m.ensureParents(path)
	m.files[path] = &fileNode{
		name:    filepath.Base(path),
		mode:    0644,
		modTime: time.Now(),
		size:    size,
	}
	return m
}

// AddExecutable creates a regular file with the execute bits set
func (m *MemoryFS) AddExecutable(path string) *MemoryFS {
	m.AddFile(path, 0)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[m.normalizePath(path)].mode = 0755
	return m
}

// AddDir creates a directory and all its parents
func (m *MemoryFS) AddDir(path string) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalizePath(path)
	m.ensureParents(path)
	if _, ok := m.files[path]; !ok {
		m.files[path] = &fileNode{
			name:    filepath.Base(path),
			mode:    0755 | os.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return m
}

// AddSymlink creates a symlink at link pointing to target. The target is
// stored verbatim and need not exist.
func (m *MemoryFS) AddSymlink(target, link string) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	link = m.normalizePath(link)
	m.ensureParents(link)
	m.files[link] = &fileNode{
		name:     filepath.Base(link),
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: target,
	}
	return m
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := m.normalizePath(name)
	for hops := 0; hops <= maxLinkHops; hops++ {
		node, err := m.getNode("stat", path)
		if err != nil {
			return nil, err
		}
		if !node.isLink {
			return &fileInfo{node: node, name: filepath.Base(name)}, nil
		}
		target := node.linkDest
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = filepath.Clean(target)
	}

	return nil, &fs.PathError{Op: "stat", Path: name, Err: errors.New("too many levels of symbolic links")}
}

// Lstat returns file info without following symlinks
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode("lstat", name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode("readlink", name)
	if err != nil {
		return "", err
	}

	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("not a symbolic link")}
	}

	return node.linkDest, nil
}

// Getwd returns the current working directory
func (m *MemoryFS) Getwd() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.errorPaths[m.cwd]; ok {
		return "", &fs.PathError{Op: "getwd", Path: m.cwd, Err: err}
	}
	return m.cwd, nil
}

// Chdir changes the current working directory
func (m *MemoryFS) Chdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(dir)
	node, err := m.getNode("chdir", path)
	if err != nil {
		return err
	}
	if !node.isDir {
		return &fs.PathError{Op: "chdir", Path: dir, Err: errors.New("not a directory")}
	}
	m.cwd = path
	return nil
}

// WithError makes every access to path fail with err
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.node.size }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }
