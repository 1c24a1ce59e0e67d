package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Effortlessly grab and copy file locations"
	MsgRootUse   = "here [PATH SEGMENT / PROGRAM SEARCH]"

	// Flag descriptions
	MsgFlagFolder          = "Get folder component of result (ignored if already a folder)"
	MsgFlagFromWhere       = "Search for the argument as a program; prompts when several match"
	MsgFlagChangeDirectory = "Set current working directory to result by typing a cd command"
	MsgFlagEscape          = `Escape backslashes (\ -> \\)`
	MsgFlagQuote           = "Wrap result in double quotes"
	MsgFlagResolveSymlink  = "Resolve symlink path (warns if not a symlink)"
	MsgFlagNoCopy          = "Prevent copy to clipboard; the result is still printed"
	MsgFlagNoColor         = "Suppress color"
	MsgFlagPosix           = "Force posix style path (backslashes become forward slashes)"
	MsgFlagNoPosix         = "Prevent posix style path (forward slashes become backslashes)"
	MsgFlagSelectFirst     = "Select first option if the search finds several (requires -w)"
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig          = "Config file (default $XDG_CONFIG_HOME/here/config.toml)"
	MsgFlagCompletion      = "Generate completion script for SHELL (bash, zsh, fish, powershell)"
	MsgFlagMarkdown        = "Generate markdown help page"
	MsgFlagGenConfig       = "Print the effective configuration as TOML"

	// Error messages
	MsgErrMetaExclusive = "--%s cannot be combined with arguments or other flags"
	MsgErrUnknownShell  = "unknown shell %q (supported: bash, zsh, fish, powershell)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
