// Package paths locates here's files under the XDG base directories.
//
// # Environment Variables
//
//   - HERE_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/here)
//   - HERE_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/here)
//
// The config directory holds config.toml; the state directory holds the
// append-only here.log.
package paths
