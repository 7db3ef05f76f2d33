package imaging

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeFrameFile writes a solid color PNG frame and returns its path.
func writeFrameFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := createFrame(width, height, c)
	path := filepath.Join(t.TempDir(), "frame.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create frame file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode frame: %v", err)
	}
	return path
}

func TestFrameCache_Load(t *testing.T) {
	cache := NewFrameCache()
	path := writeFrameFile(t, 64, 48, color.RGBA{10, 20, 30, 255})

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load is served from cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove frame file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}
}

func TestFrameCache_LoadMissing(t *testing.T) {
	cache := NewFrameCache()

	if _, err := cache.Load("/nonexistent/frame.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFrameCache_EvictAndClear(t *testing.T) {
	cache := NewFrameCache()
	path := writeFrameFile(t, 8, 8, color.White)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove frame file: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("expected reload to fail after eviction and file removal")
	}

	cache.Clear()
	cache.Evict("never-loaded") // must not panic
}

func TestFrameCache_ConcurrentLoad(t *testing.T) {
	cache := NewFrameCache()
	path := writeFrameFile(t, 16, 16, color.White)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestLoadFrameInfo(t *testing.T) {
	cache := NewFrameCache()
	path := writeFrameFile(t, 32, 24, color.RGBA{5, 5, 5, 255})

	info, err := LoadFrameInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadFrameInfo failed: %v", err)
	}

	if info.Width != 32 || info.Height != 24 {
		t.Errorf("dimensions: got %dx%d, want 32x24", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestFrameInfo_FormatFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".png", "png"},
		{".jpg", "jpeg"},
		{".jpeg", "jpeg"},
		{".gif", "gif"},
		{".tif", "tiff"},
		{".tiff", "tiff"},
		{".bmp", "unknown"},
	}

	cache := NewFrameCache()
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			// Re-encode as PNG regardless of extension; only the name matters
			// for format detection.
			src := writeFrameFile(t, 4, 4, color.White)
			path := filepath.Join(filepath.Dir(src), "frame"+tt.ext)
			if err := os.Rename(src, path); err != nil {
				t.Fatalf("failed to rename frame: %v", err)
			}

			info, err := LoadFrameInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadFrameInfo failed: %v", err)
			}
			if info.Format != tt.want {
				t.Errorf("Format: got %s, want %s", info.Format, tt.want)
			}
		})
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewFrameCache()
	path := writeFrameFile(t, 120, 90, color.Black)

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 120 || dims.Height != 90 {
		t.Errorf("dimensions: got %dx%d, want 120x90", dims.Width, dims.Height)
	}
}
