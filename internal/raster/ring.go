package raster

import (
	"math"

	"github.com/ironsheep/magnifier-mcp/internal/engine"
)

// StrokeRing draws an anti-aliased stroked circle of the given centerline
// radius and stroke thickness into dst, mutating it in place.
//
// Coverage is the minimum of the outer-edge and inner-edge falloffs, each a
// one pixel linear ramp around radius +/- thickness/2, producing a uniformly
// thick ring. Used both for circular source indicators and circular inset
// borders drawn on the destination.
func StrokeRing(dst *engine.Image, cx, cy, radius float64, c engine.Color, thickness float64) {
	outer := radius + thickness/2
	inner := radius - thickness/2

	pad := outer + 1.5
	minX := imax(int(math.Floor(cx-pad)), 0)
	maxX := imin(int(math.Ceil(cx+pad)), dst.Width-1)
	minY := imax(int(math.Floor(cy-pad)), 0)
	maxY := imin(int(math.Ceil(cy+pad)), dst.Height-1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		dy := py - cy
		// Rows fully outside the outer edge's reach contribute nothing.
		if math.Abs(dy) > outer+0.5 {
			continue
		}
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			dist := math.Hypot(px-cx, py-cy)

			outCov := clampCov(outer + 0.5 - dist)
			inCov := clampCov(dist - inner + 0.5)
			cov := math.Min(outCov, inCov)
			if cov <= 0 {
				continue
			}
			blendPixel(dst, x, y, c, cov)
		}
	}
}

func clampCov(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
