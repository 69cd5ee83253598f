package utils

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// GrayscalePlane converts an image to a single-channel intensity plane in
// row-major order. The source image is never mutated.
func GrayscalePlane(img image.Image) ([]uint8, int, int, error) {
	if img == nil {
		return nil, 0, 0, &ImageProcessingError{Operation: "grayscale", Err: errors.New("input image is nil")}
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, &ImageProcessingError{Operation: "grayscale", Err: errors.New("invalid image dimensions")}
	}

	gray := imaging.Grayscale(img)
	plane := make([]uint8, width*height)
	for y := range height {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := range width {
			// All channels are equal after grayscale conversion.
			plane[y*width+x] = row[x*4]
		}
	}
	return plane, width, height, nil
}
