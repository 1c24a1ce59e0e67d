package types

// TransformFlags holds the switches that shape the pipeline and its sinks.
// PosixStyle and NoPosixStyle are never both set once an Invocation has
// been validated.
type TransformFlags struct {
	FolderComponent   bool
	ResolveSymlink    bool
	PosixStyle        bool
	NoPosixStyle      bool
	WrapQuote         bool
	EscapeBackslash   bool
	NoCopy            bool
	NoColor           bool
	ChangeDirectory   bool
	SelectFirstOption bool
}

// SeparatorStyle collapses the posix switches into the single branch the
// separator-styling step takes
type SeparatorStyle int

const (
	// SeparatorsUntouched leaves the path separators as resolved
	SeparatorsUntouched SeparatorStyle = iota
	// SeparatorsForward turns every backslash into a forward slash
	SeparatorsForward
	// SeparatorsBackward turns every forward slash into a backslash
	SeparatorsBackward
)

// Separators returns the separator branch selected by the flags
func (f TransformFlags) Separators() SeparatorStyle {
	switch {
	case f.PosixStyle:
		return SeparatorsForward
	case f.NoPosixStyle:
		return SeparatorsBackward
	default:
		return SeparatorsUntouched
	}
}
