// Package contrast scores the luminance spread of an image on a 0-100 scale.
// The score is advisory: decode failures yield 0 rather than an error so the
// check can never fail a pipeline run.
package contrast

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
)

// Classification bands. Boundaries are inclusive on the higher band.
const (
	StatusPass    = "pass"
	StatusWarning = "warning"
	StatusFail    = "fail"

	passThreshold    = 50.0
	warningThreshold = 30.0
)

// Score computes the population standard deviation of grayscale pixel values,
// normalized against half the 8-bit dynamic range (127.5) and scaled to a
// percentage, clamped at 100. Pure function of the pixel data; any decode
// error returns 0.
func Score(data []byte) float64 {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0
	}
	return scoreImage(img)
}

func scoreImage(img image.Image) float64 {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}

	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(gray.NRGBAAt(x, y).R)
		}
	}
	mean := sum / float64(total)

	var variance float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := float64(gray.NRGBAAt(x, y).R) - mean
			variance += d * d
		}
	}
	variance /= float64(total)

	score := math.Sqrt(variance) / 127.5 * 100
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}

// Classify maps a score onto its band: pass >= 50 > warning >= 30 > fail.
func Classify(score float64) string {
	switch {
	case score >= passThreshold:
		return StatusPass
	case score >= warningThreshold:
		return StatusWarning
	default:
		return StatusFail
	}
}
