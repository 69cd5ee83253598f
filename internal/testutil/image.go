// Package testutil provides synthetic images and masks for tests.
package testutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
)

// NewUniformImage creates a solid-color RGBA image.
func NewUniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// NewRectImage creates an image with a filled rectangle on a background.
func NewRectImage(width, height int, rect image.Rectangle, bg, fg color.Color) *image.RGBA {
	img := NewUniformImage(width, height, bg)
	draw.Draw(img, rect.Intersect(img.Bounds()), &image.Uniform{fg}, image.Point{}, draw.Src)
	return img
}

// NewRectMask creates a binary mask with a filled rectangle of 255s.
// The rectangle bounds are half-open, following image.Rectangle convention.
func NewRectMask(width, height int, rect image.Rectangle) *mask.Mask {
	m := mask.New(width, height)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			m.Set(x, y, 255)
		}
	}
	return m
}

// NewDiskMask creates a binary mask with a filled circle of 255s.
func NewDiskMask(width, height, cx, cy, r int) *mask.Mask {
	m := mask.New(width, height)
	for y := range height {
		for x := range width {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				m.Set(x, y, 255)
			}
		}
	}
	return m
}
