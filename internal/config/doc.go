// Package config handles loading and parsing spyglass configuration files.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use $XDG_CONFIG_HOME/spyglass/config.toml
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, use defaults per field
//
// Missing config files are NOT an error: spyglass works out of the box
// without any configuration. Malformed TOML is an error.
//
// # TOML Format
//
// Example config.toml:
//
//	max_lines = 5000
//	auto_scroll = true
//	capture_stdout = true
//	capture_stderr = true
//	theme = "Kanagawa"
//	log_file = "~/.local/state/spyglass/spyglass.log"
//	demo = false
//	demo_interval_ms = 500
//
// All fields are optional. Tilde expansion is performed on paths.
// Setting log_file to an empty string disables the diagnostic log.
//
// # Defaults
//
//   - Config file: $XDG_CONFIG_HOME/spyglass/config.toml
//   - max_lines: 10000
//   - auto_scroll, capture_stdout, capture_stderr, demo: true
//   - theme: Nightfox
//   - log_file: $XDG_STATE_HOME/spyglass/spyglass.log
//
// # Design Philosophy
//
// The config package is read-only and stateless: it loads configuration
// once at startup and returns an immutable Config struct. Boolean fields
// are decoded through pointers so that "absent" and "false" stay
// distinguishable; a user who sets capture_stdout = false gets exactly
// that, not a default.
package config
