package keystroke

import (
	"runtime"
	"strings"
)

// DefaultCdCommand is the shell builtin used when none is configured
const DefaultCdCommand = "cd"

// CdCommand builds the line typed into the shell to enter path
func CdCommand(command, path string) string {
	return cdCommandFor(runtime.GOOS, command, path)
}

func cdCommandFor(goos, command, path string) string {
	if command == "" {
		command = DefaultCdCommand
	}
	return command + " " + quote(goos, path)
}

// quote wraps path in double quotes. POSIX shells expand a few characters
// inside double quotes, so those get a backslash. Windows paths cannot
// contain a double quote and cmd.exe treats backslash literally.
func quote(goos, path string) string {
	if goos == "windows" {
		return `"` + path + `"`
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range path {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
