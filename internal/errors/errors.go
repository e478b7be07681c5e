package errors

import "errors"

// Log file errors indicate the file sink could not be created.
var (
	// ErrLogFileOpen indicates the timestamped log file could not be opened for appending.
	ErrLogFileOpen = errors.New("failed to open log file")
)

// Severity errors indicate a level could not be resolved.
var (
	// ErrInvalidSeverity indicates a level string is neither a known name nor an integer.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrInvalidColor indicates a color name is not one the console sink knows.
	ErrInvalidColor = errors.New("invalid color")
)

// Config errors indicate issues with the TOML configuration file.
var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigExists indicates config init would overwrite an existing file.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidConfig indicates the config file is malformed.
	ErrInvalidConfig = errors.New("config file is invalid")
)
