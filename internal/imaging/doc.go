// Package imaging handles the file-facing side of the magnifier server:
// cache-backed image loading, metadata inspection, image output, base64
// preview encoding, and color parameter parsing.
//
// The pixel pipeline itself lives in internal/engine and internal/inset;
// this package converts between files, image.Image values, and tool
// responses.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and safe to call concurrently.
package imaging
