package output

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	if err := WritePNGFile(path, testImage()); err != nil {
		t.Fatalf("WritePNGFile failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		t.Fatalf("Decoding the written file failed: %v", err)
	}
	if format != "png" {
		t.Errorf("Format = %q, want png", format)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
}

func TestPreview_KeepsAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	thumb := Preview(src, 16)
	if thumb.Bounds().Dx() != 16 {
		t.Errorf("Preview width = %d, want 16", thumb.Bounds().Dx())
	}
	if thumb.Bounds().Dy() != 8 {
		t.Errorf("Preview height = %d, want 8", thumb.Bounds().Dy())
	}

	// Downscaling a flat image must not change its color.
	r, g, b, _ := thumb.At(8, 4).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("Preview pixel = (%d,%d,%d), want (200,100,50)", r>>8, g>>8, b>>8)
	}
}

func TestWritePreviewFile_RejectsBadWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := WritePreviewFile(path, testImage(), 0); err == nil {
		t.Error("Expected an error for a non-positive preview width")
	}
}
