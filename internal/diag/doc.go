// Package diag defines the diagnostic model shared by the parsing layers.
//
//   - Diagnostic is the central record: Severity, Code, position, message and
//     optional notes.
//   - Reporter decouples emission from storage; BagReporter aggregates into a
//     Bag, which supports sorting and deduplication.
//
// The package performs no formatting or IO; rendering lives in
// internal/diagfmt and orchestration in internal/driver. Keep the data model
// deterministic so diagnostics can be serialised for caching and testing.
package diag
