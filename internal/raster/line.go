package raster

import (
	"math"

	"github.com/ironsheep/magnifier-mcp/internal/engine"
)

// StrokeLine draws an anti-aliased line segment of the given thickness from
// (x0, y0) to (x1, y1) into dst, mutating it in place.
//
// Per-pixel coverage comes from the distance between the pixel center and
// its clamped projection onto the segment: 1.0 within thickness/2 - 0.5,
// linear falloff to 0 by thickness/2 + 0.5. The clamped projection rounds
// the segment's end caps. Near-zero-length segments substitute a unit
// direction vector and so draw a single round dot.
func StrokeLine(dst *engine.Image, x0, y0, x1, y1 float64, c engine.Color, thickness float64) {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-12 {
		// Degenerate segment: keep the math well-defined, draw a dot.
		dx, dy = 1, 0
		lenSq = 1
	}

	pad := thickness/2 + 1.5
	minX := int(math.Floor(math.Min(x0, x1) - pad))
	maxX := int(math.Ceil(math.Max(x0, x1) + pad))
	minY := int(math.Floor(math.Min(y0, y1) - pad))
	maxY := int(math.Ceil(math.Max(y0, y1) + pad))
	minX = imax(minX, 0)
	minY = imax(minY, 0)
	maxX = imin(maxX, dst.Width-1)
	maxY = imin(maxY, dst.Height-1)

	segYLo := math.Min(y0, y1)
	segYHi := math.Max(y0, y1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		// The perpendicular distance from any pixel in this row is at least
		// the row's vertical distance to the segment's y-extent; rows beyond
		// the coverage reach contribute nothing.
		if segYLo-py > thickness/2+0.5 || py-segYHi > thickness/2+0.5 {
			continue
		}
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			// Clamped projection of the pixel center onto the segment.
			t := ((px-x0)*dx + (py-y0)*dy) / lenSq
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			cx := x0 + t*dx
			cy := y0 + t*dy
			dist := math.Hypot(px-cx, py-cy)

			cov := lineCoverage(dist, thickness)
			if cov <= 0 {
				continue
			}
			blendPixel(dst, x, y, c, cov)
		}
	}
}

// lineCoverage maps a perpendicular distance to stroke coverage: full inside
// thickness/2 - 0.5, linear one pixel ramp, zero beyond thickness/2 + 0.5.
func lineCoverage(dist, thickness float64) float64 {
	inner := thickness/2 - 0.5
	switch {
	case dist <= inner:
		return 1.0
	case dist < inner+1:
		return inner + 1 - dist
	}
	return 0
}

// blendPixel blends the stroke color into every channel of dst at (x, y)
// with alpha = coverage * color alpha.
func blendPixel(dst *engine.Image, x, y int, c engine.Color, coverage float64) {
	a := coverage * c.A
	if a <= 0 {
		return
	}
	for ci := range dst.Ch {
		plane := dst.Ch[ci]
		v := c.Component(ci)*a + plane.At(x, y)*(1-a)
		plane.Set(x, y, v)
	}
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
