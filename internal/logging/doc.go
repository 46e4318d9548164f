// Package logging provides structured logging for wallie.
//
// This package wraps a package-global zap logger with convenience functions.
// Logging is silent by default: nothing is written unless a level is given
// explicitly or through WALLIE_LOG_LEVEL.
//
// # Log Levels
//
//   - Debug: key presses and focus changes on screens
//   - Info: directory loads, navigation
//   - Warn: failed directory loads (never shown in the UI)
//   - Error: startup failures
//
// # Output
//
// CLI commands log to stderr. The interactive screen owns the terminal, so
// it only logs when a file is configured:
//
//	if err := logging.InitializeForTUI(cfg.Log.Level, cfg.Log.File); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.LogFetch(endpoint, len(list), time.Since(start))
//	logging.LogNavigation("signup", "Home")
package logging
