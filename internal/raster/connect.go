package raster

import (
	"math"

	"github.com/ironsheep/magnifier-mcp/internal/engine"
)

// Default anchor angles for circular connection lines, measured in radians
// from each circle's center: the left anchor sits at pi (9 o'clock), the
// right anchor at 0 (3 o'clock).
const (
	DefaultLeftAngle  = math.Pi
	DefaultRightAngle = 0.0
)

// ConnectRects draws the four provenance lines between corresponding
// corners of a source rectangle and its magnified inset rectangle.
//
// Each line's inset-side endpoint is pulled inward (toward the inset's
// interior) by floor(thickness/2) on both axes, so thick strokes do not
// protrude past the inset border; the source-side endpoints sit exactly on
// the source corners.
func ConnectRects(dst *engine.Image, srcRect, insetRect engine.Rect, c engine.Color, thickness float64) {
	off := math.Floor(thickness / 2)

	srcCorners := [4][2]float64{
		{float64(srcRect.X0), float64(srcRect.Y0)},
		{float64(srcRect.X1), float64(srcRect.Y0)},
		{float64(srcRect.X0), float64(srcRect.Y1)},
		{float64(srcRect.X1), float64(srcRect.Y1)},
	}
	insCorners := [4][2]float64{
		{float64(insetRect.X0) + off, float64(insetRect.Y0) + off},
		{float64(insetRect.X1) - off, float64(insetRect.Y0) + off},
		{float64(insetRect.X0) + off, float64(insetRect.Y1) - off},
		{float64(insetRect.X1) - off, float64(insetRect.Y1) - off},
	}

	for i := 0; i < 4; i++ {
		StrokeLine(dst,
			srcCorners[i][0], srcCorners[i][1],
			insCorners[i][0], insCorners[i][1],
			c, thickness)
	}
}

// ConnectCircles draws the two provenance lines between a circular source
// region and its circular inset.
//
// Anchor points are taken at leftAngle and rightAngle radians from each
// circle's center: the source anchors at its full radius, the inset anchors
// at its radius reduced by floor(thickness/2) so strokes stay inside the
// inset border. Both angles are independently adjustable; pass
// DefaultLeftAngle and DefaultRightAngle for the standard horizontal pair.
func ConnectCircles(dst *engine.Image, srcCx, srcCy, srcR, insCx, insCy, insR float64, leftAngle, rightAngle float64, c engine.Color, thickness float64) {
	off := math.Floor(thickness / 2)

	for _, angle := range [2]float64{leftAngle, rightAngle} {
		sx := srcCx + srcR*math.Cos(angle)
		sy := srcCy + srcR*math.Sin(angle)
		ix := insCx + (insR-off)*math.Cos(angle)
		iy := insCy + (insR-off)*math.Sin(angle)
		StrokeLine(dst, sx, sy, ix, iy, c, thickness)
	}
}
