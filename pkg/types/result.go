package types

// Warning is a non-fatal condition reported once and then ignored
type Warning struct {
	Code    string
	Message string
	Path    string
}

// Transformed is the transformer's output.
// Display is what gets copied and printed; Path is the filesystem path
// (after symlink resolution and folder reduction) used for cd emission.
type Transformed struct {
	Display  string
	Path     string
	Warnings []Warning
}

// Warning codes
const (
	WarnNotSymlink   = "NOT_SYMLINK"
	WarnDoesNotExist = "DOES_NOT_EXIST"
	WarnSymlinkRead  = "SYMLINK_READ"
)
