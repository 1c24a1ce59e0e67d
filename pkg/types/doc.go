// Package types defines the core types and interfaces used throughout here.
// This includes the LocationRequest the caller asks for, the validated
// Invocation built once at the command-line boundary, and the small
// capability interfaces (FS, Locator, Prompter, Clipboard, Typist) that let
// the resolver and transformer run without touching the platform directly.
package types
