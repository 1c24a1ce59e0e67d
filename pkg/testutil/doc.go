// Package testutil provides utilities for testing here components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with symlinks and error injection, used
//     by the transformer tests so they never touch the real filesystem
//   - MockLocator, MockPrompter, MockClipboard, MockTypist: recording fakes
//     for the resolver and the output sinks
//   - TempDir/CreateFile/CreateDir/CreateSymlink: real-filesystem builders
//     for the few tests that exercise the OS implementations
package testutil
