// Package log provides the logging abstraction used by rainwater components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. A zerolog implementation and a no-op logger for
// testing are provided.
//
// # Usage
//
// Build a zerolog logger from configuration:
//
//	logger, err := log.NewZerologAdapterFor(os.Stderr, "debug", log.FormatJSON)
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
