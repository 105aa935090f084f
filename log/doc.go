// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("loading sheet", slog.String("source", "in.csv"))
//	logger.Error("evaluation failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package default logger, used by the package-level functions such as
// [Info] and [DebugContext], writes to standard error and is reconfigured in
// place with [Config].
//
// # Adding Attributes
//
// Attributes can be added to the logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("source", "in.csv"))
//	logger.Info("grid loaded") // includes source=in.csv
//
// # Supported Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured
// level are discarded. The evaluation engine reports per-cell activity at
// [LevelTrace].
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. Either may be pretty printed with [WithPretty], which
// colorizes keys and values and expands grouped attributes into dotted keys.
package log
