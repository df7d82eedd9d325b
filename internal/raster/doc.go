// Package raster draws anti-aliased vector primitives directly into engine
// sample buffers: thick line segments, stroked rings, stroked and filled
// axis-aligned boxes, and the connection lines tying a magnified inset back
// to its source region.
//
// Coverage is computed per pixel from the signed distance to the primitive:
// full inside thickness/2 - 0.5, a linear one pixel falloff out to
// thickness/2 + 0.5, zero beyond. Coverage multiplies the stroke color's
// alpha and blends over the destination, so primitives composite correctly
// over existing content.
//
// Only pixels inside a padded bounding box of each primitive are visited,
// and rows the primitive cannot reach are skipped entirely.
package raster
