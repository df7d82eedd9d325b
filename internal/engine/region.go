package engine

import (
	"fmt"
	"math"
)

// MinRegionDim is the smallest selection edge accepted for extraction.
// Selections below this magnify into unusable blur.
const MinRegionDim = 10

// Region is a self-contained extracted (or bordered) piece of an image:
// channel planes, an optional coverage mask, and the shape tag that produced
// it.
//
// The mask, when present, holds per-pixel coverage in [0, 1] encoding the
// shape's anti-aliased edge (and, after AddBorder, border-vs-content
// opacity). A nil mask means full coverage everywhere; plain rectangular
// extractions carry no mask, while AddBorder always populates one so
// downstream compositing has a single code path.
//
// Regions are transient values: each pipeline stage consumes its input and
// produces a new Region, never mutating one after construction.
type Region struct {
	Ch     []SampleBuffer
	Width  int
	Height int
	Mask   *SampleBuffer
	Shape  Shape
}

// Channels returns the number of channel planes.
func (r *Region) Channels() int { return len(r.Ch) }

// ExtractRect copies a rectangular sub-region of src into a new Region.
//
// Returns ErrOutOfBounds if rect extends past the source dimensions and
// ErrRegionTooSmall if either dimension is below MinRegionDim. Both checks
// run before any samples are copied. The result has no mask.
func ExtractRect(src *Image, rect Rect) (*Region, error) {
	if rect.X0 < 0 || rect.Y0 < 0 || rect.X1 > src.Width || rect.Y1 > src.Height {
		return nil, fmt.Errorf("%w: rect (%d,%d)-(%d,%d) exceeds source %dx%d",
			ErrOutOfBounds, rect.X0, rect.Y0, rect.X1, rect.Y1, src.Width, src.Height)
	}
	w, h := rect.Width(), rect.Height()
	if w < MinRegionDim || h < MinRegionDim {
		return nil, fmt.Errorf("%w: %dx%d, minimum is %dx%d",
			ErrRegionTooSmall, w, h, MinRegionDim, MinRegionDim)
	}

	reg := &Region{Width: w, Height: h, Shape: Rectangular, Ch: make([]SampleBuffer, len(src.Ch))}
	for ci, plane := range src.Ch {
		out := NewSampleBuffer(w, h)
		for y := 0; y < h; y++ {
			srcRow := (rect.Y0 + y) * plane.Width
			copy(out.Pix[y*w:(y+1)*w], plane.Pix[srcRow+rect.X0:srcRow+rect.X0+w])
		}
		reg.Ch[ci] = out
	}
	return reg, nil
}

// ExtractCircle copies the bounding square of a circle centered at
// (cx, cy) with the given diameter, clamped to the source bounds, and
// synthesizes an anti-aliased circular coverage mask for it. The second
// return value is the bounding square actually extracted, after clamping.
//
// The mask value per pixel is clamp(radius + 0.5 - distanceFromCenter, 0, 1),
// giving a one pixel anti-aliased edge: exactly 1.0 at the center, falling
// to 0.0 beyond radius + 0.5.
//
// Returns ErrRegionTooSmall if the diameter is below MinRegionDim.
func ExtractCircle(src *Image, cx, cy, diameter int) (*Region, Rect, error) {
	if diameter < MinRegionDim {
		return nil, Rect{}, fmt.Errorf("%w: diameter %d, minimum is %d",
			ErrRegionTooSmall, diameter, MinRegionDim)
	}

	x0 := clampInt(cx-diameter/2, 0, src.Width)
	y0 := clampInt(cy-diameter/2, 0, src.Height)
	x1 := clampInt(x0+diameter, 0, src.Width)
	y1 := clampInt(y0+diameter, 0, src.Height)
	// Re-anchor when the far edge clamped, keeping the square as large as fits.
	x0 = clampInt(x1-diameter, 0, src.Width)
	y0 = clampInt(y1-diameter, 0, src.Height)

	square := Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
	reg, err := ExtractRect(src, square)
	if err != nil {
		return nil, Rect{}, err
	}

	mask := CircleMask(reg.Width, reg.Height)
	reg.Mask = &mask
	reg.Shape = Circular
	return reg, square, nil
}

// RegionFromImage wraps an image's planes as a Region of the given shape,
// regenerating the circular coverage mask at the image's size when shape is
// Circular. Used to reconstitute a previously saved inset artifact: masks
// are derived from shape and size, never persisted.
//
// The Region shares the image's planes; it does not copy them.
func RegionFromImage(img *Image, shape Shape) *Region {
	reg := &Region{Ch: img.Ch, Width: img.Width, Height: img.Height, Shape: shape}
	if shape == Circular {
		mask := CircleMask(img.Width, img.Height)
		reg.Mask = &mask
	}
	return reg
}

// CircleMask synthesizes a circular coverage mask for a region of the given
// size. The circle is centered in the region with radius min(w, h)/2.
//
// Masks are always regenerated at the size they are needed, never resampled,
// so the one pixel anti-aliased edge stays crisp at any scale factor.
func CircleMask(w, h int) SampleBuffer {
	mask := NewSampleBuffer(w, h)
	centerX := float64(w) / 2.0
	centerY := float64(h) / 2.0
	radius := float64(minInt(w, h)) / 2.0

	for y := 0; y < h; y++ {
		dy := float64(y) + 0.5 - centerY
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - centerX
			dist := math.Sqrt(dx*dx + dy*dy)
			mask.Set(x, y, radius+0.5-dist)
		}
	}
	return mask
}
