// Package render converts raster images into ASCII art.
//
// The conversion is a single pure transformation: the source image is
// resampled to a character grid whose height preserves the source aspect
// ratio (corrected for the fact that a monospaced terminal cell is taller
// than it is wide), each grid cell is reduced to a grayscale intensity in
// [0, 255], and each intensity is mapped to a character from an ordered
// palette. Rows are emitted in row-major order, each terminated by a
// newline.
//
// # Output Shape
//
// For a successful conversion every row has exactly Options.Width
// characters, every character is drawn from the palette, and the number of
// rows equals the computed grid height (at least 1, even for extremely
// wide sources).
//
// # Determinism
//
// The same image bytes, width, palette, and intensity mode always produce
// byte-identical output. The resampling filter is Lanczos; other
// implementations using a different filter may produce different (equally
// valid) character grids.
//
// # Concurrency
//
// The package holds no process-wide state. Render and RenderImage may be
// called concurrently with independent arguments without coordination;
// each call owns its decoded image exclusively for its duration. Nothing
// is cached between calls.
//
// # Error Handling
//
// Anticipated failures (missing file, undecodable data, invalid
// parameters) are returned as *Error values carrying a Kind the caller can
// branch on. The package never writes to a console and never terminates
// the process.
package render
