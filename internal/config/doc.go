// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/ucscgen/config.cue (or XDG equivalent
// on Linux, ~/Library/Application Support/ucscgen/config.cue on macOS,
// %APPDATA%\ucscgen\config.cue on Windows), with a config.cue in the current
// directory as a fallback. It covers the userApps release version, the
// download base URL, and the recipes, templates, and work directories.
//
// Files are validated against a CUE schema (config_schema.cue) before use, so
// a typo fails with a schema error instead of being silently ignored.
package config
