// Package errors provides typed error values for gpglog.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Log file errors: the log sink could not be opened (ErrLogFileOpen)
//   - Severity errors: a level or color name was not recognized (ErrInvalidSeverity, ErrInvalidColor)
//   - Config errors: the TOML config is missing, malformed or already present (ErrConfigNotFound, ErrInvalidConfig, ErrConfigExists)
//
// # Usage
//
// Wrap errors with additional context, keeping the underlying cause:
//
//	return nil, fmt.Errorf("%w: %w", errors.ErrLogFileOpen, err)
//
// Handle errors in the CLI layer:
//
//	log, err := logging.New(level)
//	if errors.Is(err, fs.ErrNotExist) {
//	    // The tests/ directory is missing.
//	}
package errors
