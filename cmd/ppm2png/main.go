// Command ppm2png converts an ASCII PPM (P3) file produced by the renderer
// into a PNG.
//
// Usage: ppm2png input.ppm output.png
package main

import (
	"fmt"
	"os"

	"spheretrace/pkg/output"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: ppm2png input.ppm output.png")
		os.Exit(1)
	}

	img, err := output.ReadPPMFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	if err := output.WritePNGFile(os.Args[2], img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", os.Args[2], err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", os.Args[2], bounds.Dx(), bounds.Dy())
}
