package engine

// SampleBuffer is a single-channel raster plane: a flat, row-major array of
// float64 samples in [0, 1] with explicit dimensions.
//
// Invariant: len(Pix) == Width*Height. Reads do not clamp; every write path
// clamps values into [0, 1] via Set or clamp01.
type SampleBuffer struct {
	Pix    []float64
	Width  int
	Height int
}

// NewSampleBuffer allocates a zeroed plane of the given dimensions.
func NewSampleBuffer(width, height int) SampleBuffer {
	return SampleBuffer{
		Pix:    make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the sample at (x, y). Coordinates must be in bounds.
func (b SampleBuffer) At(x, y int) float64 {
	return b.Pix[y*b.Width+x]
}

// Set writes a sample at (x, y), clamped to [0, 1].
func (b SampleBuffer) Set(x, y int, v float64) {
	b.Pix[y*b.Width+x] = clamp01(v)
}

// Fill sets every sample to v (clamped).
func (b SampleBuffer) Fill(v float64) {
	v = clamp01(v)
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Clone returns a deep copy of the plane.
func (b SampleBuffer) Clone() SampleBuffer {
	out := SampleBuffer{Pix: make([]float64, len(b.Pix)), Width: b.Width, Height: b.Height}
	copy(out.Pix, b.Pix)
	return out
}

// Image is a multi-channel raster: one SampleBuffer per channel, all sharing
// the same dimensions. Channel order is the order of the Ch slice (typically
// R, G, B and optionally A).
type Image struct {
	Ch     []SampleBuffer
	Width  int
	Height int
}

// NewImage allocates a zeroed image with the given channel count.
func NewImage(width, height, channels int) *Image {
	img := &Image{Width: width, Height: height, Ch: make([]SampleBuffer, channels)}
	for i := range img.Ch {
		img.Ch[i] = NewSampleBuffer(width, height)
	}
	return img
}

// Channels returns the number of channel planes.
func (img *Image) Channels() int { return len(img.Ch) }

// Bounds returns the image extent as a Rect anchored at the origin.
func (img *Image) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.Width, Y1: img.Height}
}

// Rect is an axis-aligned integer box. (X0, Y0) is the inclusive top-left
// corner, (X1, Y1) the exclusive bottom-right corner.
type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Width returns X1 - X0.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Intersect returns the overlap of r and other. Disjoint rectangles yield an
// empty result (checkable with Empty).
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		X0: maxInt(r.X0, other.X0),
		Y0: maxInt(r.Y0, other.Y0),
		X1: minInt(r.X1, other.X1),
		Y1: minInt(r.Y1, other.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Color is an RGB color with components in [0, 1] plus an alpha/opacity
// component, also in [0, 1]. The zero alpha of a literal is usually not what
// callers want; construct via NewColor for the default opaque alpha.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// NewColor returns an opaque color (alpha 1.0) with each component clamped
// to [0, 1].
func NewColor(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: 1.0}
}

// WithAlpha returns a copy of c with the given alpha, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Component returns the color channel for plane index i, mapping channels
// beyond blue to the alpha component (plane 3 of an RGBA image carries
// opacity, which for a solid color is its alpha).
func (c Color) Component(i int) float64 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}

// Position is an integer top-left placement on a destination image.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shape identifies the selection geometry carried through the pipeline.
// It is a closed enum: every stage switches exhaustively over these two
// values rather than comparing strings.
type Shape int

const (
	// Rectangular selections copy samples directly and carry no mask until
	// a border is added.
	Rectangular Shape = iota

	// Circular selections carry an anti-aliased coverage mask and render
	// with transparent corners.
	Circular
)

// String returns the lowercase tag used in tool parameters.
func (s Shape) String() string {
	if s == Circular {
		return "circle"
	}
	return "rectangle"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampInt constrains an integer value to the range [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
