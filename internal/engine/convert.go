package engine

import (
	"image"

	"github.com/disintegration/imaging"
)

// FromImage converts any image.Image into an engine Image of four channel
// planes (R, G, B, A) with samples scaled into [0, 1].
//
// The source is normalized to non-premultiplied NRGBA first, so YCbCr,
// paletted, and 16-bit inputs all decode through one path and alpha stays
// independent of color.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()

	img := NewImage(w, h, 4)
	for y := 0; y < h; y++ {
		row := y * nrgba.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			idx := y*w + x
			img.Ch[0].Pix[idx] = float64(nrgba.Pix[i]) / 255.0
			img.Ch[1].Pix[idx] = float64(nrgba.Pix[i+1]) / 255.0
			img.Ch[2].Pix[idx] = float64(nrgba.Pix[i+2]) / 255.0
			img.Ch[3].Pix[idx] = float64(nrgba.Pix[i+3]) / 255.0
		}
	}
	return img
}

// ToImage converts an engine Image back to an 8-bit NRGBA image. Missing
// channels default sensibly: a single plane replicates to gray, a missing
// alpha plane renders opaque.
func ToImage(img *Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := y * out.Stride
		for x := 0; x < img.Width; x++ {
			i := row + x*4
			idx := y*img.Width + x
			out.Pix[i] = sampleToByte(img, 0, idx)
			out.Pix[i+1] = sampleToByte(img, 1, idx)
			out.Pix[i+2] = sampleToByte(img, 2, idx)
			if len(img.Ch) > 3 {
				out.Pix[i+3] = sampleToByte(img, 3, idx)
			} else {
				out.Pix[i+3] = 255
			}
		}
	}
	return out
}

func sampleToByte(img *Image, ch, idx int) uint8 {
	if ch >= len(img.Ch) {
		ch = len(img.Ch) - 1
	}
	v := clamp01(img.Ch[ch].Pix[idx])
	return uint8(v*255 + 0.5)
}
