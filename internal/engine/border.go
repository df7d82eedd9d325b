package engine

import "math"

// AddBorder frames a region with a solid border, producing a new Region
// enlarged by 2*borderWidth in each dimension.
//
// Every output sample starts as the border color; the content is then
// blended back into the interior using the region's mask (copied directly
// when no mask is present). The border color's alpha becomes the border
// ring's opacity in the synthesized mask.
//
// The result always carries a mask, regardless of input shape, so
// CompositeInset has one uniform path:
//
//   - Circular: zero outside outer radius + 0.5, anti-aliased edge scaled by
//     the border alpha across outer radius +/- 0.5, border alpha over the
//     ring, 1.0 inside the inner (content) radius. Circular insets thus
//     render with transparent corners and a uniformly opaque ring
//     independent of content alpha.
//   - Rectangular: border alpha everywhere, 1.0 over the interior content
//     rectangle [b, w+b) x [b, h+b).
func AddBorder(reg *Region, borderWidth int, borderColor Color) *Region {
	b := borderWidth
	w := reg.Width + 2*b
	h := reg.Height + 2*b

	out := &Region{Width: w, Height: h, Shape: reg.Shape, Ch: make([]SampleBuffer, len(reg.Ch))}
	for ci := range reg.Ch {
		plane := NewSampleBuffer(w, h)
		plane.Fill(borderColor.Component(ci))
		blendContent(plane, reg.Ch[ci], reg.Mask, b)
		out.Ch[ci] = plane
	}

	var mask SampleBuffer
	switch reg.Shape {
	case Circular:
		mask = circularBorderMask(w, h, b, borderColor.A)
	case Rectangular:
		mask = NewSampleBuffer(w, h)
		mask.Fill(borderColor.A)
		for y := b; y < b+reg.Height; y++ {
			for x := b; x < b+reg.Width; x++ {
				mask.Pix[y*w+x] = 1.0
			}
		}
	}
	out.Mask = &mask
	return out
}

// blendContent writes the content plane into dst offset by b on both axes,
// alpha-blending against the border fill with the source mask when present.
func blendContent(dst, content SampleBuffer, mask *SampleBuffer, b int) {
	for y := 0; y < content.Height; y++ {
		for x := 0; x < content.Width; x++ {
			v := content.At(x, y)
			if mask != nil {
				a := mask.At(x, y)
				v = v*a + dst.At(x+b, y+b)*(1-a)
			}
			dst.Set(x+b, y+b, v)
		}
	}
}

// circularBorderMask builds the bordered coverage mask for a circular
// region: outer radius is the canvas radius, inner radius is outer minus the
// border width.
//
// Zones by distance from center:
//
//	dist >  outer+0.5              -> 0 (transparent corners)
//	outer-0.5 < dist <= outer+0.5  -> anti-aliased edge scaled by borderAlpha
//	inner < dist <= outer-0.5      -> borderAlpha (the ring)
//	dist <= inner                  -> 1 (opaque content)
func circularBorderMask(w, h, borderWidth int, borderAlpha float64) SampleBuffer {
	mask := NewSampleBuffer(w, h)
	centerX := float64(w) / 2.0
	centerY := float64(h) / 2.0
	outer := float64(minInt(w, h)) / 2.0
	inner := outer - float64(borderWidth)

	for y := 0; y < h; y++ {
		dy := float64(y) + 0.5 - centerY
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - centerX
			dist := math.Sqrt(dx*dx + dy*dy)

			var v float64
			switch {
			case dist > outer+0.5:
				v = 0
			case dist > outer-0.5:
				v = (outer + 0.5 - dist) * borderAlpha
			case dist > inner:
				v = borderAlpha
			default:
				v = 1.0
			}
			mask.Set(x, y, v)
		}
	}
	return mask
}
