// Package imagecodec decodes, resizes, and encodes raster images for the
// asset pipeline. Encoders return base64 text, matching the job storage
// convention.
package imagecodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"assetgen/internal/domain"
)

// jpegQuality is fixed; callers cannot tune lossy output.
const jpegQuality = 95

// Encoded is the result of one encode call.
type Encoded struct {
	// Data is the encoded payload as base64 text.
	Data string
	// Format is the requested format label. When RasterFallback is set the
	// bytes behind Data are PNG regardless of this label.
	Format domain.Format
	// RasterFallback marks svg/ai/psd requests that were served as PNG
	// because no native encoder exists for them.
	RasterFallback bool
}

// DecodeAndValidate fully decodes the payload, rejecting non-image or corrupt
// bytes. A successful return means every pixel parsed, not just the header.
func DecodeAndValidate(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrInvalidImage)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	return img, nil
}

// Resize scales the image to exactly width x height using Lanczos resampling.
// Aspect ratio is not preserved; mismatched ratios distort.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize: non-positive dimensions %dx%d", width, height)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// Encode serializes the image into the requested format. PNG is lossless,
// JPEG flattens alpha onto white at quality 95, PDF wraps the raster as a
// single page sized width x height points (1 px = 1 pt). svg, ai and psd have
// no native encoder and fall back to PNG bytes with RasterFallback set.
func Encode(img image.Image, format domain.Format, width, height int) (Encoded, error) {
	var buf bytes.Buffer
	fallback := false

	switch format {
	case domain.FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return Encoded{}, fmt.Errorf("%w: png: %v", domain.ErrEncodingFailed, err)
		}
	case domain.FormatJPEG:
		if err := imaging.Encode(&buf, flatten(img), imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return Encoded{}, fmt.Errorf("%w: jpeg: %v", domain.ErrEncodingFailed, err)
		}
	case domain.FormatPDF:
		data, err := encodePDF(img, width, height)
		if err != nil {
			return Encoded{}, err
		}
		buf.Write(data)
	case domain.FormatSVG, domain.FormatAI, domain.FormatPSD:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return Encoded{}, fmt.Errorf("%w: %s fallback: %v", domain.ErrEncodingFailed, format, err)
		}
		fallback = true
	default:
		return Encoded{}, fmt.Errorf("%w: unsupported format %q", domain.ErrEncodingFailed, format)
	}

	return Encoded{
		Data:           base64.StdEncoding.EncodeToString(buf.Bytes()),
		Format:         format,
		RasterFallback: fallback,
	}, nil
}

// encodePDF draws the alpha-flattened raster as the sole content of a single
// page whose size in points equals the pixel dimensions. No DPI scaling.
func encodePDF(img image.Image, width, height int) ([]byte, error) {
	var pngBuf bytes.Buffer
	if err := imaging.Encode(&pngBuf, flatten(img), imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: pdf raster: %v", domain.ErrEncodingFailed, err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("page", opts, &pngBuf)
	pdf.ImageOptions("page", 0, 0, float64(width), float64(height), false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: pdf: %v", domain.ErrEncodingFailed, err)
	}
	return out.Bytes(), nil
}

// flatten composites the image onto an opaque white background so formats
// without alpha support render predictably.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
