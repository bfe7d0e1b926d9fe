// Package testutil provides utilities for testing cmdmatch components.
//
// Key components:
//   - TestEnvironment: isolated XDG directories and scratch files for tests
//     that load config, rule files or write logs
//   - Recorder: a rule handler that remembers what it was called with
//
// Usage guidelines:
//   - Tests that read or write under XDG paths must use NewTestEnvironment
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
