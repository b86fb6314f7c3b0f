// Package imageprocessor renders preview thumbnails of uploaded images.
package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ErrUnsupportedImage is returned for content that is not a PNG or JPEG.
var ErrUnsupportedImage = errors.New("unsupported image format")

const (
	DefaultMaxSide = 320
	DefaultQuality = 80
)

// Thumbnail is an encoded preview image.
type Thumbnail struct {
	Body        []byte
	ContentType string
	Width       int
	Height      int
}

type Processor struct {
	maxSide int
	quality int // JPEG quality (1-100)
}

func NewProcessor(maxSide, quality int) *Processor {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Processor{maxSide: maxSide, quality: quality}
}

// Supports reports whether a thumbnail can be produced for the MIME type.
func Supports(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}

// Thumbnail decodes r and scales it to fit a maxSide square, keeping the
// aspect ratio. Smaller images are re-encoded at their own size. PNG input
// stays PNG so transparency survives; everything else becomes JPEG.
func (p *Processor) Thumbnail(r io.Reader) (*Thumbnail, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedImage
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	scaled := p.fit(img)
	bounds := scaled.Bounds()

	var buf bytes.Buffer
	thumb := &Thumbnail{Width: bounds.Dx(), Height: bounds.Dy()}
	switch format {
	case "png":
		if err := png.Encode(&buf, scaled); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		thumb.ContentType = "image/png"
	case "jpeg":
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		thumb.ContentType = "image/jpeg"
	default:
		return nil, ErrUnsupportedImage
	}
	thumb.Body = buf.Bytes()
	return thumb, nil
}

func (p *Processor) fit(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= p.maxSide && height <= p.maxSide {
		return img
	}

	newWidth, newHeight := p.maxSide, p.maxSide
	if width > height {
		newHeight = max(1, height*p.maxSide/width)
	} else {
		newWidth = max(1, width*p.maxSide/height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
