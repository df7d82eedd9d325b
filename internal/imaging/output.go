package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// jpegQuality is used when saving rendered output as JPEG.
const jpegQuality = 95

// Save writes img to path, choosing the encoder from the file extension
// (.png, .jpg/.jpeg). Unknown extensions are rejected rather than guessed.
func Save(img image.Image, path string) error {
	var encoder imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encoder = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		encoder = imgio.JPEGEncoder(jpegQuality)
	default:
		return fmt.Errorf("unsupported output extension %q (use .png, .jpg, or .jpeg)", filepath.Ext(path))
	}
	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodedImage is a base64 PNG rendition of an image, the wire form used in
// tool responses.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Preview encodes img as a base64 PNG, first downscaling it to fit within
// maxEdge x maxEdge (aspect preserved) so responses stay small. A maxEdge
// of 0 or less disables downscaling.
func Preview(img image.Image, maxEdge int) (*EncodedImage, error) {
	bounds := img.Bounds()
	if maxEdge > 0 && (bounds.Dx() > maxEdge || bounds.Dy() > maxEdge) {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}
	return EncodePNG(img)
}
