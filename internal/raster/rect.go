package raster

import "github.com/ironsheep/magnifier-mcp/internal/engine"

// StrokeRect outlines an axis-aligned rectangle with four stroked lines
// along its edges. The stroke is centered on the rectangle boundary.
func StrokeRect(dst *engine.Image, r engine.Rect, c engine.Color, thickness float64) {
	x0 := float64(r.X0)
	y0 := float64(r.Y0)
	x1 := float64(r.X1)
	y1 := float64(r.Y1)

	StrokeLine(dst, x0, y0, x1, y0, c, thickness)
	StrokeLine(dst, x1, y0, x1, y1, c, thickness)
	StrokeLine(dst, x1, y1, x0, y1, c, thickness)
	StrokeLine(dst, x0, y1, x0, y0, c, thickness)
}

// FillBox fills an axis-aligned rectangle, clipped to dst, blending with the
// color's alpha. A fully opaque color overwrites the covered samples
// directly.
func FillBox(dst *engine.Image, r engine.Rect, c engine.Color) {
	visible := r.Intersect(dst.Bounds())
	if visible.Empty() || c.A <= 0 {
		return
	}

	for ci := range dst.Ch {
		plane := dst.Ch[ci]
		v := c.Component(ci)
		for y := visible.Y0; y < visible.Y1; y++ {
			row := y * plane.Width
			for x := visible.X0; x < visible.X1; x++ {
				if c.A >= 1 {
					plane.Pix[row+x] = v
				} else {
					plane.Set(x, y, v*c.A+plane.Pix[row+x]*(1-c.A))
				}
			}
		}
	}
}
