package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnail_ScalesDownKeepingRatio(t *testing.T) {
	p := NewProcessor(100, 0)

	thumb, err := p.Thumbnail(bytes.NewReader(encodePNG(t, 400, 200)))
	require.NoError(t, err)
	assert.Equal(t, "image/png", thumb.ContentType)
	assert.Equal(t, 100, thumb.Width)
	assert.Equal(t, 50, thumb.Height)

	decoded, err := png.Decode(bytes.NewReader(thumb.Body))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), decoded.Bounds())
}

func TestThumbnail_SmallImageKeepsSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	thumb, err := NewProcessor(100, 90).Thumbnail(&buf)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", thumb.ContentType)
	assert.Equal(t, 40, thumb.Width)
	assert.Equal(t, 60, thumb.Height)
}

func TestThumbnail_RejectsNonImages(t *testing.T) {
	_, err := NewProcessor(0, 0).Thumbnail(bytes.NewReader([]byte("%PDF-1.4")))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	assert.True(t, Supports("image/png"))
	assert.False(t, Supports("application/pdf"))
}
