package contrast

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func checkerboard(w, h int) image.Image {
	img := imaging.New(w, h, color.NRGBA{A: 255})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}

func gradient(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.NRGBA{A: 255})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 20), B: 40, A: 255})
		}
	}
	return img
}

func TestScoreUniformImageIsZero(t *testing.T) {
	data := pngBytes(t, imaging.New(16, 16, color.NRGBA{R: 120, G: 120, B: 120, A: 255}))
	if got := Score(data); got != 0 {
		t.Fatalf("Score(uniform) = %v, want 0", got)
	}
}

func TestScoreCheckerboardIsMaximal(t *testing.T) {
	data := pngBytes(t, checkerboard(16, 16))
	if got := Score(data); got != 100 {
		t.Fatalf("Score(checkerboard) = %v, want 100", got)
	}
}

func TestScoreFlipInvariant(t *testing.T) {
	img := gradient(8, 8)
	want := Score(pngBytes(t, img))
	if got := Score(pngBytes(t, imaging.FlipH(img))); got != want {
		t.Fatalf("Score(flipH) = %v, want %v", got, want)
	}
	if got := Score(pngBytes(t, imaging.FlipV(img))); got != want {
		t.Fatalf("Score(flipV) = %v, want %v", got, want)
	}
}

func TestScoreDecodeErrorReturnsZero(t *testing.T) {
	if got := Score([]byte("not an image")); got != 0 {
		t.Fatalf("Score(garbage) = %v, want 0", got)
	}
	if got := Score(nil); got != 0 {
		t.Fatalf("Score(nil) = %v, want 0", got)
	}
}

func TestClassifyBands(t *testing.T) {
	cases := map[float64]string{
		100.0: StatusPass,
		50.0:  StatusPass,
		49.9:  StatusWarning,
		30.0:  StatusWarning,
		29.9:  StatusFail,
		0.0:   StatusFail,
	}
	for score, want := range cases {
		if got := Classify(score); got != want {
			t.Errorf("Classify(%v) = %q, want %q", score, got, want)
		}
	}
}
