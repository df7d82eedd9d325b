package engine

import (
	"errors"
	"math"
	"testing"
)

func TestExtractRect(t *testing.T) {
	src := newGradientImage(100, 80, 3)

	reg, err := ExtractRect(src, Rect{X0: 10, Y0: 20, X1: 40, Y1: 60})
	if err != nil {
		t.Fatalf("ExtractRect failed: %v", err)
	}

	if reg.Width != 30 || reg.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 30x40", reg.Width, reg.Height)
	}
	if reg.Channels() != 3 {
		t.Errorf("channels: got %d, want 3", reg.Channels())
	}
	if reg.Mask != nil {
		t.Error("rectangular extraction should carry no mask")
	}
	if reg.Shape != Rectangular {
		t.Errorf("shape: got %v, want Rectangular", reg.Shape)
	}

	// Samples must match the source offset by the rect origin.
	for ci := 0; ci < 3; ci++ {
		for _, p := range [][2]int{{0, 0}, {29, 39}, {15, 7}} {
			got := reg.Ch[ci].At(p[0], p[1])
			want := src.Ch[ci].At(p[0]+10, p[1]+20)
			if got != want {
				t.Fatalf("ch %d at (%d,%d): got %v, want %v", ci, p[0], p[1], got, want)
			}
		}
	}
}

func TestExtractRect_OutOfBounds(t *testing.T) {
	src := newGradientImage(50, 50, 1)

	tests := []struct {
		name string
		rect Rect
	}{
		{"negative x", Rect{-1, 0, 30, 30}},
		{"negative y", Rect{0, -1, 30, 30}},
		{"past right edge", Rect{30, 0, 51, 30}},
		{"past bottom edge", Rect{0, 30, 30, 51}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractRect(src, tt.rect)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestExtractRect_TooSmall(t *testing.T) {
	src := newGradientImage(50, 50, 1)

	tests := []struct {
		name string
		rect Rect
	}{
		{"narrow", Rect{0, 0, 9, 30}},
		{"short", Rect{0, 0, 30, 9}},
		{"both", Rect{0, 0, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractRect(src, tt.rect)
			if !errors.Is(err, ErrRegionTooSmall) {
				t.Errorf("got %v, want ErrRegionTooSmall", err)
			}
		})
	}

	// Exactly at the minimum is accepted.
	if _, err := ExtractRect(src, Rect{0, 0, MinRegionDim, MinRegionDim}); err != nil {
		t.Errorf("minimum-size rect rejected: %v", err)
	}
}

func TestExtractCircle(t *testing.T) {
	src := newGradientImage(100, 100, 3)

	reg, square, err := ExtractCircle(src, 50, 50, 40)
	if err != nil {
		t.Fatalf("ExtractCircle failed: %v", err)
	}

	if reg.Width != 40 || reg.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", reg.Width, reg.Height)
	}
	if reg.Shape != Circular {
		t.Errorf("shape: got %v, want Circular", reg.Shape)
	}
	if reg.Mask == nil {
		t.Fatal("circular extraction must carry a mask")
	}
	want := Rect{X0: 30, Y0: 30, X1: 70, Y1: 70}
	if square != want {
		t.Errorf("bounding square: got %+v, want %+v", square, want)
	}
}

func TestExtractCircle_ClampsToBounds(t *testing.T) {
	src := newGradientImage(60, 60, 1)

	// Center near the corner: the bounding square must slide inside.
	reg, square, err := ExtractCircle(src, 5, 5, 30)
	if err != nil {
		t.Fatalf("ExtractCircle failed: %v", err)
	}
	if square.X0 < 0 || square.Y0 < 0 || square.X1 > 60 || square.Y1 > 60 {
		t.Errorf("square not clamped: %+v", square)
	}
	if reg.Width != 30 || reg.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 30x30", reg.Width, reg.Height)
	}
}

func TestExtractCircle_TooSmall(t *testing.T) {
	src := newGradientImage(60, 60, 1)
	_, _, err := ExtractCircle(src, 30, 30, 9)
	if !errors.Is(err, ErrRegionTooSmall) {
		t.Errorf("got %v, want ErrRegionTooSmall", err)
	}
}

func TestCircleMask_Properties(t *testing.T) {
	const d = 41
	mask := CircleMask(d, d)
	center := float64(d) / 2.0
	radius := center

	// Exactly 1.0 at the center pixel.
	if got := mask.At(d/2, d/2); got != 1.0 {
		t.Errorf("center coverage: got %v, want 1.0", got)
	}

	// Zero beyond radius + 0.5 (the corners qualify).
	for _, p := range [][2]int{{0, 0}, {d - 1, 0}, {0, d - 1}, {d - 1, d - 1}} {
		if got := mask.At(p[0], p[1]); got != 0.0 {
			t.Errorf("corner (%d,%d): got %v, want 0.0", p[0], p[1], got)
		}
	}

	// Monotonically non-increasing with distance from center along a row.
	y := d / 2
	prev := 1.0
	for x := d / 2; x < d; x++ {
		got := mask.At(x, y)
		if got > prev+1e-12 {
			t.Fatalf("mask increases with distance at x=%d: %v > %v", x, got, prev)
		}
		prev = got
	}

	// Spot-check the formula itself.
	for _, p := range [][2]int{{d / 2, 2}, {5, 5}, {d - 3, d / 2}} {
		dx := float64(p[0]) + 0.5 - center
		dy := float64(p[1]) + 0.5 - center
		want := radius + 0.5 - math.Sqrt(dx*dx+dy*dy)
		if want < 0 {
			want = 0
		} else if want > 1 {
			want = 1
		}
		if got := mask.At(p[0], p[1]); !almostEqual(got, want, 1e-12) {
			t.Errorf("mask at (%d,%d): got %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestRegionFromImage(t *testing.T) {
	img := newGradientImage(30, 30, 3)

	rect := RegionFromImage(img, Rectangular)
	if rect.Mask != nil {
		t.Error("rectangular region from image should have no mask")
	}

	circ := RegionFromImage(img, Circular)
	if circ.Mask == nil {
		t.Fatal("circular region from image must regenerate its mask")
	}
	if circ.Mask.Width != 30 || circ.Mask.Height != 30 {
		t.Errorf("mask dimensions: got %dx%d, want 30x30", circ.Mask.Width, circ.Mask.Height)
	}
}
