// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/vintage/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/vintage/config.cue on macOS, %APPDATA%\vintage\config.cue
// on Windows), then from ./config.cue when no user file exists. Environment variables
// prefixed with VINTAGE_ override file values.
//
// Configuration files are validated against an embedded CUE schema (config_schema.cue)
// before being merged into Viper.
package config
