// Package logging provides the leveled, colorized logger used by gpglog.
//
// A single Logger is built at startup with New and passed to every
// component that logs. Records go to a timestamped file under ./tests and,
// when the threshold is above DisabledLevel, to a colorized console sink on
// stderr.
//
// # Severities
//
//	0   DISABLED  Disable all logging.
//	9   STATUS    Raw GnuPG status-fd output.
//	10  DEBUG     Debugging messages.
//	20  INFO      Normal user-level messages.
//	30  WARNING   Warnings, including captured standard log output.
//	40  ERROR     Errors.
//	50  CRITICAL  Unrecoverable failures.
//
// STATUS sits below DEBUG, so a DEBUG threshold also records status lines
// while a threshold of exactly 9 isolates them.
//
// # Record Layout
//
// Every sink renders records with Layout:
//
//	12   L42  :Encrypt            STATUS  [GNUPG:] BEGIN_ENCRYPTION 2 9
//
// The columns are elapsed milliseconds since New, source line, function name
// (truncated to 18), level name (truncated to 7) and the message.
//
// # Usage
//
//	log, err := logging.New(logging.StatusLevel)
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//	log.Statusf("%s", line)
package logging
