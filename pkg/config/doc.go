// Package config loads srap's user settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. $XDG_CONFIG_HOME/srap/config.toml, or config.yaml if no TOML file exists
//  3. SRAP_* environment variables (SRAP_NO_COLOR=1, SRAP_LOG_LEVEL=debug, ...)
//
// SRAP_CONFIG_DIR replaces the XDG config directory.
package config
