package render

// charAspect corrects for the geometry of a monospaced terminal cell,
// which is roughly twice as tall as it is wide. Without it an
// aspect-preserving resize appears vertically stretched when printed.
const charAspect = 0.55

// GridFor computes the character grid a source image is resampled to.
//
// The width is the requested output width. The height preserves the source
// aspect ratio scaled by charAspect:
//
//	height = floor(width * (srcH / srcW) * 0.55)
//
// For very wide, very short sources (a panorama) the floor can reach 0;
// the height is clamped to 1 so the output always contains at least one
// row. Callers must pass positive dimensions; Render validates its inputs
// before calling.
func GridFor(outputWidth, srcWidth, srcHeight int) (width, height int) {
	aspect := float64(srcHeight) / float64(srcWidth)
	height = int(float64(outputWidth) * aspect * charAspect)
	if height < 1 {
		height = 1
	}
	return outputWidth, height
}
