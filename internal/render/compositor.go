package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ivlev/svg2anim/internal/system"
)

// Layer is one frame sequence placed on the composite canvas.
type Layer struct {
	Frames []*image.RGBA
	Offset image.Point
}

// Compositor assembles timeline frames by stacking layers on a solid
// background, in layer order, at their configured offsets.
type Compositor struct {
	Width      int
	Height     int
	Background color.Color
	pool       *system.CanvasPool
}

func NewCompositor(width, height int, background color.Color) *Compositor {
	return &Compositor{
		Width:      width,
		Height:     height,
		Background: background,
		pool:       system.NewCanvasPool(width, height),
	}
}

// Composite renders one canvas; local[i] selects the frame of layer i.
// The returned canvas comes from the pool: release it with Recycle once
// encoded.
func (c *Compositor) Composite(layers []Layer, local []int) *image.RGBA {
	canvas := c.pool.Get()
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	for i, layer := range layers {
		frame := layer.Frames[local[i]]
		dst := image.Rectangle{Min: layer.Offset, Max: layer.Offset.Add(frame.Bounds().Size())}
		draw.Draw(canvas, dst, frame, frame.Bounds().Min, draw.Over)
	}

	return canvas
}

// Recycle returns a canvas to the pool.
func (c *Compositor) Recycle(canvas *image.RGBA) {
	c.pool.Put(canvas)
}
