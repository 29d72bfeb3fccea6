package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
)

// WritePPMFile writes the image as ASCII PPM (P3) to the given path
func WritePPMFile(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PPM file: %w", err)
	}
	defer file.Close()

	if err := WritePPM(file, img); err != nil {
		return err
	}
	return nil
}

// WritePPM encodes an image as ASCII PPM (P3): a "P3\n<w> <h>\n255\n"
// header followed by one "R G B" triplet per pixel, scanlines top to
// bottom.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("failed to write PPM pixel: %w", err)
			}
		}
	}

	return bw.Flush()
}

// ReadPPMFile reads an ASCII PPM (P3) image from the given path
func ReadPPMFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()
	return ReadPPM(file)
}

// ReadPPM decodes an ASCII PPM (P3) image. Comment lines are skipped and
// samples with a max value other than 255 are rescaled.
func ReadPPM(r io.Reader) (image.Image, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var tokens []string
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			if line != "P3" {
				return nil, fmt.Errorf("unsupported PPM magic %q, only ASCII P3 is supported", line)
			}
			first = false
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PPM: %w", err)
	}
	if first {
		return nil, fmt.Errorf("empty PPM input")
	}
	if len(tokens) < 3 {
		return nil, fmt.Errorf("incomplete PPM header")
	}

	var width, height, maxVal int
	if _, err := fmt.Sscan(tokens[0], &width); err != nil {
		return nil, fmt.Errorf("invalid PPM width %q", tokens[0])
	}
	if _, err := fmt.Sscan(tokens[1], &height); err != nil {
		return nil, fmt.Errorf("invalid PPM height %q", tokens[1])
	}
	if _, err := fmt.Sscan(tokens[2], &maxVal); err != nil {
		return nil, fmt.Errorf("invalid PPM max value %q", tokens[2])
	}
	if width <= 0 || height <= 0 || maxVal <= 0 {
		return nil, fmt.Errorf("invalid PPM dimensions %dx%d max %d", width, height, maxVal)
	}

	values := tokens[3:]
	expected := width * height * 3
	if len(values) < expected {
		return nil, fmt.Errorf("PPM pixel data truncated: got %d values, want %d", len(values), expected)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	idx := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b int
			if _, err := fmt.Sscan(values[idx], &r); err != nil {
				return nil, fmt.Errorf("invalid PPM sample %q", values[idx])
			}
			if _, err := fmt.Sscan(values[idx+1], &g); err != nil {
				return nil, fmt.Errorf("invalid PPM sample %q", values[idx+1])
			}
			if _, err := fmt.Sscan(values[idx+2], &b); err != nil {
				return nil, fmt.Errorf("invalid PPM sample %q", values[idx+2])
			}
			idx += 3
			img.SetRGBA(x, y, color.RGBA{
				R: rescale(r, maxVal),
				G: rescale(g, maxVal),
				B: rescale(b, maxVal),
				A: 255,
			})
		}
	}

	return img, nil
}

func rescale(v, maxVal int) uint8 {
	if maxVal == 255 {
		return uint8(v)
	}
	return uint8(float64(v)*255.0/float64(maxVal) + 0.5)
}
