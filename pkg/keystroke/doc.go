// Package keystroke types a directory change into the user's shell.
//
// Keystrokes go to whatever currently reads the terminal (or, on Windows,
// whatever window has focus). Nothing confirms that a shell received them.
package keystroke
