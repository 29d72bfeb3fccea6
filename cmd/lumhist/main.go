// Command lumhist plots a luminance histogram of a rendered image.
// It accepts either PNG or ASCII PPM (P3) input.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"strings"

	"spheretrace/pkg/output"
	"spheretrace/pkg/viz"
)

func main() {
	input := flag.String("input", "", "Input image (PNG or PPM)")
	out := flag.String("out", "luminance_hist.png", "Output histogram PNG")
	bins := flag.Int("bins", 50, "Histogram bins")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: lumhist -input render.ppm [-out hist.png] [-bins 50]")
		os.Exit(1)
	}

	img, err := loadImage(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *input, err)
		os.Exit(1)
	}

	lums := viz.Luminances(img)
	counts := viz.Histogram(lums, *bins)
	if err := viz.DrawHistogram(counts, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing histogram: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s (%dx%d), wrote histogram to %s\n", *input, bounds.Dx(), bounds.Dy(), *out)
}

func loadImage(path string) (image.Image, error) {
	if strings.HasSuffix(strings.ToLower(path), ".ppm") {
		return output.ReadPPMFile(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	return img, err
}
