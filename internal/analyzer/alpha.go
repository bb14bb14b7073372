package analyzer

import "image"

// ContentBounds returns the tight bounding box of all pixels with nonzero
// alpha. ok is false for a fully transparent image, which marks a frame
// as empty: such frames are dropped from their sequence before timeline
// synchronization.
func ContentBounds(img image.Image) (bounds image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// IsEmpty reports whether an image has no visible content.
func IsEmpty(img image.Image) bool {
	_, ok := ContentBounds(img)
	return !ok
}
