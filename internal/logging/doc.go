// Package logging provides structured logging for tinto.
//
// This package wraps a global zap logger with convenience functions. Logging is
// silent unless a level is configured with --log-level or TINTO_LOG_LEVEL,
// and output always goes to a file because the dashboard owns the terminal.
//
// # Log Levels
//
//   - Debug: Inventory refreshes, unsupported navigation, key classification
//   - Info: Completed device commands
//   - Warn: Failed device commands, failed refreshes, dropped commands
//   - Error: Startup failures
//
// # Usage
//
//	path, _ := logging.DefaultLogPath()
//	if err := logging.Initialize("debug", path); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogCommand("toggle-light", "Strip", time.Since(start), err)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned. The dispatcher worker and the refresher log from their own
// goroutines.
package logging
