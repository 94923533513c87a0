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
//	logger.Info("render complete", slog.Int("regions", n))
//
// A process-wide default logger backs the package-level functions and
// is reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//	log.Debug("classifier result", slog.String("shape", shape))
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. Text output can be colorized with [WithPretty].
//
// # Context-Aware Logging
//
// Each logging level has a context-aware and a context-unaware variant.
// Context-unaware functions internally call their context-aware
// counterparts using [DefaultContextProvider], which returns
// [context.TODO] by default.
package log
