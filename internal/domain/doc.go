// Package domain holds the error values shared by rainwater components.
//
// It has no dependencies on infrastructure concerns (logging, file system,
// command line) so any layer can import it.
package domain
