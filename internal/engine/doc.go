// Package engine implements the pixel-processing pipeline that produces a
// magnified "inset" overlay on a raster image: region extraction with shape
// masking, multi-kernel resampling, border synthesis, placement, and alpha
// compositing.
//
// # Sample Model
//
// All processing happens on float64 sample planes in the range [0, 1]. A
// SampleBuffer holds one channel; an Image is an ordered sequence of planes
// sharing one width and height. Values are not clamped on read, but every
// write path clamps to [0, 1].
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at the top-left corner:
//   - X increases rightward, Y increases downward
//   - Rect uses inclusive (X0, Y0) and exclusive (X1, Y1)
//
// # Pipeline
//
// The stages run in a fixed order, each a pure transform producing a new
// value from its input:
//
//	ExtractRect/ExtractCircle -> ScaleRegion -> AddBorder ->
//	CalculatePosition -> CompositeInset
//
// The destination Image passed to CompositeInset is the only long-lived
// mutable resource; the engine never allocates or frees it, only writes
// clipped sub-rectangles.
//
// # Thread Safety
//
// Every operation is stateless and synchronous. Concurrent pipeline runs
// against distinct destination buffers need no coordination; runs against
// the same destination must be serialized by the caller.
//
// # Error Handling
//
// Extraction validates before copying anything: ErrOutOfBounds when the
// requested region extends past the source, ErrRegionTooSmall when either
// selection dimension is below 10 pixels. A compositing target rectangle
// that does not overlap the destination is a silent no-op, not an error.
package engine
