package encoder

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// WriteGIF encodes the frame sequence as an infinitely looping animated
// GIF. delayMS is the per-frame display duration in milliseconds; GIF
// stores delays in hundredths of a second, so values round down to the
// nearest 10ms.
func WriteGIF(path string, frames []*image.RGBA, delayMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0, // infinite
	}

	delay := delayMS / 10
	if delay < 1 {
		delay = 1
	}

	for _, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}
