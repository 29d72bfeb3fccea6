package output

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 12, G: 34, B: 56, A: 255})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	want := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"12 34 56\n"
	if buf.String() != want {
		t.Errorf("PPM output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestReadPPM_RoundTrip(t *testing.T) {
	src := testImage()

	var buf bytes.Buffer
	if err := WritePPM(&buf, src); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	decoded, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}

	if decoded.Bounds() != src.Bounds() {
		t.Fatalf("Bounds = %v, want %v", decoded.Bounds(), src.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			wantR, wantG, wantB, _ := src.At(x, y).RGBA()
			gotR, gotG, gotB, _ := decoded.At(x, y).RGBA()
			if gotR != wantR || gotG != wantG || gotB != wantB {
				t.Errorf("Pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					x, y, gotR>>8, gotG>>8, gotB>>8, wantR>>8, wantG>>8, wantB>>8)
			}
		}
	}
}

func TestReadPPM_CommentsAndWhitespace(t *testing.T) {
	input := `P3
# a comment
2 1
# another comment
255
255 128 0
0 0 0
`
	img, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 0 {
		t.Errorf("Pixel (0,0) = (%d,%d,%d), want (255,128,0)", r>>8, g>>8, b>>8)
	}
}

func TestReadPPM_RescalesMaxValue(t *testing.T) {
	input := "P3\n1 1\n15\n15 7 0\n"
	img, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("Red = %d, want 255", r>>8)
	}
	if g>>8 != 119 {
		t.Errorf("Green = %d, want 119", g>>8)
	}
	if b>>8 != 0 {
		t.Errorf("Blue = %d, want 0", b>>8)
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"binary magic", "P6\n1 1\n255\n"},
		{"truncated pixels", "P3\n2 2\n255\n255 0 0\n"},
		{"zero width", "P3\n0 2\n255\n"},
		{"bad sample", "P3\n1 1\n255\nred green blue\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestWriteReadPPMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")

	if err := WritePPMFile(path, testImage()); err != nil {
		t.Fatalf("WritePPMFile failed: %v", err)
	}
	img, err := ReadPPMFile(path)
	if err != nil {
		t.Fatalf("ReadPPMFile failed: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}

	if err := WritePPMFile(filepath.Join(t.TempDir(), "no", "such", "dir.ppm"), testImage()); err == nil {
		t.Error("Expected an error for an unwritable path")
	}
	_ = os.Remove(path)
}
