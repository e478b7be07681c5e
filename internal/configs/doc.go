// Package configs loads gpglog's optional TOML configuration.
//
// The file is gpglog.toml in the working directory unless --config names
// another path. Every key is optional:
//
//	[logging]
//	level = "STATUS"          # a name or an integer
//	directory = "tests"       # where the timestamped log file goes
//	base_name = "test_gnupg.log"
//
//	[logging.colors.STATUS]
//	foreground = "magenta"
//	bold = true
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
// Command-line flags take precedence over the file.
package configs
