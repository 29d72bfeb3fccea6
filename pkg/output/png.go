package output

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// WritePNGFile writes the image as PNG to the given path
func WritePNGFile(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePreviewFile writes a downscaled PNG preview of the image. The
// height follows from the source aspect ratio.
func WritePreviewFile(path string, img image.Image, previewWidth int) error {
	if previewWidth <= 0 {
		return fmt.Errorf("preview width must be positive, got %d", previewWidth)
	}
	thumb := resize.Resize(uint(previewWidth), 0, img, resize.Lanczos3)
	return WritePNGFile(path, thumb)
}

// Preview returns a downscaled copy of the image
func Preview(img image.Image, previewWidth int) image.Image {
	return resize.Resize(uint(previewWidth), 0, img, resize.Lanczos3)
}
