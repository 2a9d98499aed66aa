// Package logger provides a leveled console logger that decorates each line
// with an optional ANSI colour, an optional timestamp and a [LEVEL] prefix.
//
// # Console Output
//
// Log, debug and info lines go to stdout; warn and error lines go to stderr.
// Colour is only applied when the process is attached to a terminal. When
// JOURNAL_STREAM is set, lines carry journald priority prefixes.
//
// # Features
//
//   - Loggers shared per option set through GetLogger (or a private Registry)
//   - Level filtering with weights: debug < info < warn < error < silent
//   - Log always prints, whatever the threshold
//   - printf-style interpolation; maps, structs and slices are rendered as JSON
//   - Pluggable output through SetProvider
//   - Default threshold from the LOGGER_LEVEL environment variable
//   - YAML config files for options and live level reloads
//   - Prometheus line counters through MetricsProvider
//   - Unfiltered Stdout, Stderr, Print and Puts writers
//
// # Usage
//
// Get a logger once and keep it:
//
//	log, err := logger.GetLogger(logger.WithLevel(logger.InfoLevel), logger.WithTimeStamp(true))
//	if err != nil {
//	    return err
//	}
//	log.Info("server started on port %d", 8080)
//	log.Warn("config", map[string]int{"retries": 3})
//
// A line at warn level with every decoration on looks like:
//
//	\033[33m2024-04-02 16:19:34.382 - [WARN] disk almost full\033[39m
//
// # Level Filtering
//
// Change the threshold at runtime with SetLevel, or seed the default:
//
//	LOGGER_LEVEL=debug ./myapp
package logger
