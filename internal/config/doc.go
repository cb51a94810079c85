// Package config loads trolley's configuration file.
//
// # Overview
//
// Trolley reads a small TOML file at ~/.config/trolley/config.toml. Every
// field is optional; a missing file is not an error and yields the defaults.
//
// # Fields
//
//	api_base = "127.0.0.1:7602"   # host:port (or full URL) of the list API
//
// # Path Handling
//
// Paths passed to Load may use a leading "~" which is expanded to the user's
// home directory. The config path itself can be overridden with the -config
// flag on the trolley binary.
//
// # Error Handling
//
//   - Missing file: defaults returned, no error
//   - Unreadable file or malformed TOML: wrapped error returned
//   - Blank values: treated as unset, defaults applied
package config
