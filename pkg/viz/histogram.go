package viz

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Luminances computes the linear Rec. 709 luminance of every pixel.
// 8-bit channel values are linearized with the renderer's gamma of 2.2.
func Luminances(img image.Image) []float64 {
	bounds := img.Bounds()
	lums := make([]float64, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rLin := math.Pow(float64(r>>8)/255.0, 2.2)
			gLin := math.Pow(float64(g>>8)/255.0, 2.2)
			bLin := math.Pow(float64(b>>8)/255.0, 2.2)
			lums = append(lums, 0.2126*rLin+0.7152*gLin+0.0722*bLin)
		}
	}
	return lums
}

// Histogram bins values from [0, 1] into the given number of bins.
// Values outside the range are clamped into the edge bins.
func Histogram(values []float64, bins int) []int {
	counts := make([]int, bins)
	for _, v := range values {
		i := int(v * float64(bins))
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}

// DrawHistogram renders a luminance histogram as a bar chart PNG
func DrawHistogram(counts []int, path string) error {
	const (
		width    = 600
		height   = 400
		margin   = 40.0
		labelGap = 18.0
	)

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return fmt.Errorf("histogram is empty")
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin
	barW := plotW / float64(len(counts))

	for i, c := range counts {
		barH := plotH * float64(c) / float64(maxCount)
		x := margin + float64(i)*barW
		y := margin + plotH - barH
		dc.SetRGB(0.5, 0.5, 0.5)
		dc.DrawRectangle(x, y, barW, barH)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawRectangle(x, y, barW, barH)
		dc.Stroke()
	}

	// Axes and labels
	dc.SetRGB(0, 0, 0)
	dc.DrawLine(margin, margin+plotH, margin+plotW, margin+plotH)
	dc.DrawLine(margin, margin, margin, margin+plotH)
	dc.Stroke()
	dc.DrawStringAnchored("Luminance (linear)", margin+plotW/2, margin+plotH+labelGap, 0.5, 0.5)
	dc.DrawStringAnchored("0", margin, margin+plotH+labelGap, 0.5, 0.5)
	dc.DrawStringAnchored("1", margin+plotW, margin+plotH+labelGap, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("max %d", maxCount), margin, margin-labelGap/2, 0, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}
