// Package testutil provides helpers shared by the taml-html tests.
//
// Key components:
//   - Isolate: points the XDG directories at a temp dir and restores the
//     global logger afterwards, so tests never read the user's config or
//     write to their log file
//   - CaptureLogs: swaps the global zerolog logger for one writing JSON to
//     a buffer
//   - CreateFile / ReadFile: fixture files that fail the test on error
package testutil
