// Package filesystem provides filesystem implementations for here.
//
// This package contains the OS implementation of the types.FS interface.
// The in-memory implementation used by tests lives in pkg/testutil.
package filesystem
