package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG creates a small PNG in dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 0, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestImageCache_LoadAndCache(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "a.png", 12, 8)

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("dims: got %dx%d, want 12x8", b.Dx(), b.Dy())
	}

	// Second load hits the cache even after the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed after file removal: %v", err)
	}

	// Eviction forces a re-read, which now fails.
	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("load after evict succeeded despite missing file")
	}
}

func TestImageCache_Clear(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "b.png", 4, 4)

	cache := NewImageCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	cache.Clear()
	if _, err := cache.Load(path); err == nil {
		t.Error("load after clear succeeded despite missing file")
	}
}

func TestImageCache_LoadErrors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	// Non-image bytes fail decoding.
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(bad); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestLoadImageInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "info.png", 20, 10)

	info, err := LoadImageInfo(NewImageCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 20 || info.Height != 10 {
		t.Errorf("dims: got %dx%d, want 20x10", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
	if !info.HasAlpha {
		t.Error("NRGBA source should report has_alpha")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d", info.FileSizeBytes)
	}
	if !filepath.IsAbs(info.Identity) {
		t.Errorf("identity is not absolute: %q", info.Identity)
	}
}

func TestGetDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "dims.png", 33, 17)

	res, err := GetDimensions(NewImageCache(), path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if res.Width != 33 || res.Height != 17 {
		t.Errorf("got %dx%d, want 33x17", res.Width, res.Height)
	}
}

func TestIdentity_Stable(t *testing.T) {
	a := Identity("some/dir/../dir/img.png")
	b := Identity("some/dir/img.png")
	if a != b {
		t.Errorf("equivalent paths map to different identities: %q vs %q", a, b)
	}
}
