// Package inset orchestrates the magnified-inset pipeline over the engine
// and raster primitives: extract a source region, resample it by the zoom
// factor, frame it with a border, place it, and composite it back onto the
// destination together with the source indicator and connection lines.
//
// The pipeline order is fixed. Annotations are drawn on the destination
// before the inset bitmap so the inset visually occludes the line ends.
//
// Two entry points cover the two workflows:
//
//   - Render: the single-shot path. Source and destination are the same
//     image and placement is clamped onto the canvas.
//   - Finalize: composites a previously extracted inset onto a possibly
//     different destination, with unclamped placement (insets may hang
//     off-canvas; compositing clips).
package inset
