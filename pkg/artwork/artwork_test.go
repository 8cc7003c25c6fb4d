package artwork

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cyan = color.RGBA{0x06, 0xb6, 0xd4, 0xff}
	blue = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
)

func TestSnapWidth(t *testing.T) {
	assert.Equal(t, 320, SnapWidth(10))
	assert.Equal(t, 320, SnapWidth(320))
	assert.Equal(t, DefaultWidth, SnapWidth(0))
	assert.Equal(t, 960, SnapWidth(641))
	assert.Equal(t, 960, SnapWidth(700))
	assert.Equal(t, MaxWidth, SnapWidth(1281))
	assert.Equal(t, MaxWidth, SnapWidth(10_000))
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, DefaultWidth, ClampWidth(0))
	assert.Equal(t, DefaultWidth, ClampWidth(-5))
	assert.Equal(t, MinWidth, ClampWidth(10))
	assert.Equal(t, MaxWidth, ClampWidth(10_000))
	assert.Equal(t, 800, ClampWidth(800))
}

func TestCoverAspectAndColors(t *testing.T) {
	img := Cover(cyan, blue, 640)
	assert.Equal(t, image.Rect(0, 0, 640, 360), img.Bounds())

	// Bottom-right corner is outside the highlight and close to the end color.
	r, g, b, _ := img.At(639, 359).RGBA()
	assert.InDelta(t, float64(blue.R), float64(r>>8), 8)
	assert.InDelta(t, float64(blue.G), float64(g>>8), 8)
	assert.InDelta(t, float64(blue.B), float64(b>>8), 8)
}

func TestCoverBaseSizeSkipsScaling(t *testing.T) {
	img := Cover(cyan, blue, 320)
	assert.Equal(t, image.Rect(0, 0, 320, 180), img.Bounds())
}

func TestEncodeRoundTrip(t *testing.T) {
	img := Cover(cyan, blue, 128)

	for _, f := range []Format{PNG, JPEG} {
		data, err := Encode(img, f)
		require.NoError(t, err)

		decoded, name, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, string(f), name)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, JPEG, ParseFormat("jpg"))
	assert.Equal(t, JPEG, ParseFormat("jpeg"))
	assert.Equal(t, PNG, ParseFormat("webp"))
	assert.Equal(t, "image/png", PNG.ContentType())
}
