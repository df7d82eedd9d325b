package engine

import (
	"math"
	"testing"
)

func TestAddBorder_RectangularDimensions(t *testing.T) {
	src := newGradientImage(60, 50, 3)
	reg, err := ExtractRect(src, Rect{0, 0, 40, 30})
	if err != nil {
		t.Fatalf("ExtractRect failed: %v", err)
	}

	bordered := AddBorder(reg, 5, NewColor(1, 0, 0))
	if bordered.Width != 50 || bordered.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 50x40", bordered.Width, bordered.Height)
	}
	if bordered.Mask == nil {
		t.Fatal("bordered region must always carry a mask")
	}
	if bordered.Shape != Rectangular {
		t.Errorf("shape: got %v, want Rectangular", bordered.Shape)
	}
}

func TestAddBorder_RectangularMask(t *testing.T) {
	const b = 4
	const alpha = 0.75
	src := newSolidImage(40, 40, 3, 0.5)
	reg, err := ExtractRect(src, Rect{0, 0, 20, 16})
	if err != nil {
		t.Fatalf("ExtractRect failed: %v", err)
	}

	bordered := AddBorder(reg, b, NewColor(0, 0, 1).WithAlpha(alpha))
	mask := bordered.Mask

	for y := 0; y < bordered.Height; y++ {
		for x := 0; x < bordered.Width; x++ {
			inContent := x >= b && x < 20+b && y >= b && y < 16+b
			want := alpha
			if inContent {
				want = 1.0
			}
			if got := mask.At(x, y); got != want {
				t.Fatalf("mask at (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestAddBorder_RectangularSamples(t *testing.T) {
	src := newSolidImage(40, 40, 3, 0.25)
	reg, err := ExtractRect(src, Rect{0, 0, 12, 12})
	if err != nil {
		t.Fatalf("ExtractRect failed: %v", err)
	}

	border := NewColor(1.0, 0.5, 0.0)
	bordered := AddBorder(reg, 3, border)

	// Corner sample is pure border color.
	for ci := 0; ci < 3; ci++ {
		if got := bordered.Ch[ci].At(0, 0); got != border.Component(ci) {
			t.Errorf("border ch %d: got %v, want %v", ci, got, border.Component(ci))
		}
	}

	// Maskless content is copied straight over the border fill.
	for ci := 0; ci < 3; ci++ {
		if got := bordered.Ch[ci].At(3, 3); got != 0.25 {
			t.Errorf("content ch %d: got %v, want 0.25", ci, got)
		}
	}
}

func TestAddBorder_CircularMaskZones(t *testing.T) {
	const b = 6
	const alpha = 0.8
	src := newSolidImage(80, 80, 3, 0.5)
	reg, _, err := ExtractCircle(src, 40, 40, 40)
	if err != nil {
		t.Fatalf("ExtractCircle failed: %v", err)
	}

	bordered := AddBorder(reg, b, NewColor(1, 1, 1).WithAlpha(alpha))
	mask := bordered.Mask

	w, h := bordered.Width, bordered.Height
	centerX := float64(w) / 2
	centerY := float64(h) / 2
	outer := float64(w) / 2
	inner := outer - b

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			dist := math.Sqrt(dx*dx + dy*dy)

			got := mask.At(x, y)
			switch {
			case dist > outer+0.5:
				if got != 0 {
					t.Fatalf("outside (%d,%d) dist=%.2f: got %v, want 0", x, y, dist, got)
				}
			case dist > outer-0.5:
				want := (outer + 0.5 - dist) * alpha
				if !almostEqual(got, want, 1e-12) {
					t.Fatalf("edge (%d,%d): got %v, want %v", x, y, got, want)
				}
			case dist > inner:
				if !almostEqual(got, alpha, 1e-12) {
					t.Fatalf("ring (%d,%d): got %v, want %v", x, y, got, alpha)
				}
			default:
				if got != 1.0 {
					t.Fatalf("content (%d,%d): got %v, want 1.0", x, y, got)
				}
			}
		}
	}
}

func TestAddBorder_CircularBlendsContentByMask(t *testing.T) {
	src := newSolidImage(60, 60, 1, 1.0)
	reg, _, err := ExtractCircle(src, 30, 30, 30)
	if err != nil {
		t.Fatalf("ExtractCircle failed: %v", err)
	}

	// Black border behind white circular content: the corner must stay
	// border black, the center pure white.
	bordered := AddBorder(reg, 4, NewColor(0, 0, 0))

	if got := bordered.Ch[0].At(bordered.Width/2, bordered.Height/2); got != 1.0 {
		t.Errorf("center: got %v, want 1.0", got)
	}
	if got := bordered.Ch[0].At(0, 0); got != 0.0 {
		t.Errorf("corner: got %v, want 0.0", got)
	}
}
