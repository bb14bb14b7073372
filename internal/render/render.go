package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/svg2anim/internal/analyzer"
)

// Flatten recolors every non-transparent pixel to the given hex color,
// preserving the alpha channel. This collapses the drawing tool's fills
// and strokes into one silhouette hue.
func Flatten(img *image.RGBA, hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("invalid fill color %q: %w", hex, err)
	}
	r8, g8, b8 := c.RGB255()

	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		a := pix[i+3]
		if a == 0 {
			continue
		}
		// RGBA is alpha-premultiplied.
		pix[i] = uint8(int(r8) * int(a) / 255)
		pix[i+1] = uint8(int(g8) * int(a) / 255)
		pix[i+2] = uint8(int(b8) * int(a) / 255)
	}
	return nil
}

// FitFrame crops an image to its content bounds and places it into a
// fixed-size transparent frame, centered horizontally. anchor "bottom"
// pins the content to the lower edge (so a flame base or skull jaw stays
// put while the silhouette changes); anything else centers vertically.
func FitFrame(img *image.RGBA, width, height int, anchor string) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))

	bounds, ok := analyzer.ContentBounds(img)
	if !ok {
		return frame
	}

	x := (width - bounds.Dx()) / 2
	var y int
	if anchor == "bottom" {
		y = height - bounds.Dy()
	} else {
		y = (height - bounds.Dy()) / 2
	}

	dst := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	draw.Draw(frame, dst, img, bounds.Min, draw.Over)
	return frame
}

// Scale resamples an image to the given size.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// ScaleToFit resamples preserving aspect ratio so the image fits inside
// width x height.
func ScaleToFit(img image.Image, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	sx := float64(width) / float64(b.Dx())
	sy := float64(height) / float64(b.Dy())
	s := sx
	if sy < s {
		s = sy
	}
	w := int(float64(b.Dx()) * s)
	h := int(float64(b.Dy()) * s)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Scale(img, w, h)
}

// ParseColor converts a hex string to an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r8, g8, b8 := c.RGB255()
	return color.RGBA{R: r8, G: g8, B: b8, A: 255}, nil
}
