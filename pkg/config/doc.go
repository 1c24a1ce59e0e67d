// Package config loads here's settings.
//
// Sources are layered, later ones winning: the embedded defaults, the user
// file ($XDG_CONFIG_HOME/here/config.toml, or the file given with
// --config) and HERE_* environment variables such as HERE_SEARCH_BACKEND
// or HERE_CHANGE_DIRECTORY_SUBMIT.
package config
