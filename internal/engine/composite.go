package engine

// CompositeInset alpha-blends a processed region onto dst at pos, mutating
// dst in place.
//
// The region's rectangle is intersected with the destination bounds; an
// empty intersection is a silent no-op (a normal consequence of placing an
// inset off-canvas, not an error). For the visible sub-rectangle and each of
// the first min(region channels, destination channels) planes the blend is
//
//	dst = src*a + dst*(1-a)   with   a = globalOpacity * mask
//
// where mask defaults to 1.0 when the region carries none. Destination
// planes beyond the channel minimum are left untouched.
//
// Note that a bordered region's mask already encodes the border ring's
// intrinsic opacity, so a globalOpacity below 1 compounds with it: the ring
// fades by both factors. This compounding is intentional and covered by
// tests; callers wanting an unfaded ring should pass an opaque border color
// and globalOpacity 1.
func CompositeInset(dst *Image, reg *Region, pos Position, globalOpacity float64) {
	target := Rect{X0: pos.X, Y0: pos.Y, X1: pos.X + reg.Width, Y1: pos.Y + reg.Height}
	visible := target.Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}

	channels := minInt(len(reg.Ch), len(dst.Ch))
	for ci := 0; ci < channels; ci++ {
		srcPlane := reg.Ch[ci]
		dstPlane := dst.Ch[ci]
		for y := visible.Y0; y < visible.Y1; y++ {
			sy := y - pos.Y
			for x := visible.X0; x < visible.X1; x++ {
				sx := x - pos.X

				a := globalOpacity
				if reg.Mask != nil {
					a *= reg.Mask.At(sx, sy)
				}
				if a <= 0 {
					continue
				}
				blended := srcPlane.At(sx, sy)*a + dstPlane.At(x, y)*(1-a)
				dstPlane.Set(x, y, blended)
			}
		}
	}
}
