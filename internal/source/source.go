package source

import (
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Source abstracts a sequence of renderable frames.
type Source interface {
	FrameCount() int
	Bounds(index int) (width, height float64, err error)
	Render(index int, width, height int) (*image.RGBA, error)
	Close() error
}

// SVGSource rasterizes a fixed list of SVG frame files.
type SVGSource struct {
	paths []string
}

func NewSVGSource(paths []string) *SVGSource {
	return &SVGSource{paths: paths}
}

func (s *SVGSource) FrameCount() int {
	return len(s.paths)
}

func (s *SVGSource) Bounds(index int) (float64, float64, error) {
	icon, err := oksvg.ReadIcon(s.paths[index], oksvg.WarnErrorMode)
	if err != nil {
		return 0, 0, err
	}
	return icon.ViewBox.W, icon.ViewBox.H, nil
}

// Render rasterizes one frame with an alpha channel. Width/height <= 0
// renders at the asset's native viewBox size. Each call re-reads the
// file, so renders are safe to run from parallel workers.
func (s *SVGSource) Render(index int, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIcon(s.paths[index], oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		width = int(icon.ViewBox.W + 0.5)
		height = int(icon.ViewBox.H + 0.5)
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(dasher, 1.0)

	return img, nil
}

func (s *SVGSource) Close() error {
	return nil
}
