package types

import (
	"context"
	"io/fs"
)

// FS is the read-only slice of the filesystem the transformer needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	// Lstat must not follow a final symlink
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}

// Locator finds the install locations of a program by name.
// Implementations return every candidate the platform reports, in the
// order it reports them; an empty slice means nothing was found.
type Locator interface {
	Locate(ctx context.Context, term string) ([]Candidate, error)
}

// Prompter asks the user to pick exactly one of several candidates
type Prompter interface {
	Select(message string, options []string) (string, error)
}

// Clipboard replaces the clipboard contents with text
type Clipboard interface {
	Write(text string) error
}

// Typist synthesizes keyboard input into whatever currently has focus.
// There is no delivery acknowledgement.
type Typist interface {
	Type(text string) error
	Submit() error
}
