// Package cli implements the command-line surface of img2ascii.
//
// The core conversion lives in internal/render and is a pure function; this
// package owns everything with side effects: argument parsing, the stdout
// and stderr streams, and the translation of render error kinds into user
// messages and a process exit code. Keeping the surface here rather than in
// package main makes it testable with ordinary buffers.
//
// # Streams
//
// The ASCII art is written to stdout so it can be piped or redirected.
// Diagnostics, usage text, and errors go to stderr.
//
// # Exit Codes
//
//	0  conversion succeeded
//	1  conversion failed (missing file, decode failure)
//	2  usage error (bad flags, missing image path)
package cli
