// Package artwork draws the gradient cover images shown on product cards.
package artwork

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

const (
	baseWidth  = 320
	baseHeight = 180

	MinWidth     = 64
	MaxWidth     = 1600
	DefaultWidth = 640
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// ParseFormat accepts "png", "jpeg" and "jpg"; anything else is PNG.
func ParseFormat(s string) Format {
	switch s {
	case "jpeg", "jpg":
		return JPEG
	default:
		return PNG
	}
}

// ClampWidth keeps a requested width within [MinWidth, MaxWidth]; zero or
// negative widths select DefaultWidth.
func ClampWidth(w int) int {
	switch {
	case w <= 0:
		return DefaultWidth
	case w < MinWidth:
		return MinWidth
	case w > MaxWidth:
		return MaxWidth
	}
	return w
}

// Widths are the sizes covers are rendered at.
var Widths = []int{320, 640, 960, 1280, MaxWidth}

// SnapWidth clamps w and rounds it up to the nearest entry of Widths, so
// arbitrary ?w= values share a handful of renders.
func SnapWidth(w int) int {
	w = ClampWidth(w)
	for _, size := range Widths {
		if w <= size {
			return size
		}
	}
	return MaxWidth
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// base paints a diagonal from→to gradient with a soft highlight in the upper
// left quadrant.
func base(from, to color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, baseWidth, baseHeight))
	cx, cy, r := float64(baseWidth)*0.3, float64(baseHeight)*0.35, float64(baseHeight)*0.6

	for y := 0; y < baseHeight; y++ {
		for x := 0; x < baseWidth; x++ {
			t := (float64(x)/baseWidth + float64(y)/baseHeight) / 2
			c := color.RGBA{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
				A: 0xff,
			}

			dx, dy := float64(x)-cx, float64(y)-cy
			if d := (dx*dx + dy*dy) / (r * r); d < 1 {
				glow := (1 - d) * 0.25
				c.R = lerp(c.R, 0xff, glow)
				c.G = lerp(c.G, 0xff, glow)
				c.B = lerp(c.B, 0xff, glow)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Cover renders a 16:9 cover of the given width.
func Cover(from, to color.RGBA, width int) image.Image {
	width = ClampWidth(width)
	height := width * baseHeight / baseWidth

	src := base(from, to)
	if width == baseWidth {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Encode serializes img in the requested format.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
