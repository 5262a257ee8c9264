// Package logging builds the slog logger used for diagnostics.
//
// Log output always goes to stderr: stdout is reserved for rendered
// command results so piped output stays machine-readable.
package logging
