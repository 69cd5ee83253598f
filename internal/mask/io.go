package mask

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// FromImage converts a decoded image into a binary mask, thresholding any
// non-black pixel to 255.
func FromImage(img image.Image) (*Mask, error) {
	plane, w, h, err := utils.GrayscalePlane(img)
	if err != nil {
		return nil, err
	}
	m := &Mask{Width: w, Height: h, Pix: plane}
	m.Binarize()
	return m, nil
}

// Load reads a mask image from disk and binarizes it.
func Load(path string) (*Mask, error) {
	img, _, err := utils.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// ToImage renders the mask as an 8-bit grayscale image.
func (m *Mask) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := range m.Height {
		copy(img.Pix[y*img.Stride:y*img.Stride+m.Width], m.Pix[y*m.Width:(y+1)*m.Width])
	}
	return img
}

// Save writes the mask to disk as a PNG.
func (m *Mask) Save(path string) error {
	if m == nil {
		return errors.New("cannot save nil mask")
	}
	f, err := os.Create(path) //nolint:gosec // G304: Writing user-provided output path is expected
	if err != nil {
		return fmt.Errorf("create mask file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error closing mask file: %v\n", cerr)
		}
	}()
	if err := png.Encode(f, m.ToImage()); err != nil {
		return fmt.Errorf("encode mask png: %w", err)
	}
	return nil
}
