// Package logging provides structured logging for emcodec.
//
// This package wraps a global zap logger with convenience functions. The
// logger is silent until Initialize is called with a level or the
// EMCODEC_LOG_LEVEL environment variable is set, so the codec packages can
// log unconditionally without producing output for library callers.
//
// # Log Levels
//
//   - Debug: encoded and decoded datagrams with hex dumps
//   - Info: CLI operations, configuration loading
//   - Warn: unknown command codes, unknown enumeration values
//   - Error: failures surfaced to the CLI user
//
// # Structured Logging
//
//	logging.Debug("Decoded datagram",
//	    zap.Uint16("command", 271),
//	    zap.String("language", "english"),
//	)
//
// # Configuration
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Logs go to stderr in console format so CLI output on stdout stays clean.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once the logger has been
// initialized. Initialize and SetLogger must not race with logging calls.
package logging
