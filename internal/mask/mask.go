// Package mask provides the binary mask type shared by the refinement
// pipeline, together with rasterization, morphology, and edge-preserving
// post-filtering. Masks hold only the values 0 and 255 after every stage.
package mask

// Mask is a row-major H×W binary grid stored as 0/255 bytes.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// New creates an all-zero mask of the given dimensions.
func New(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	out := &Mask{Width: m.Width, Height: m.Height, Pix: make([]uint8, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// At returns the value at (x, y). Out-of-bounds coordinates read as 0.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Set writes v at (x, y). Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = v
}

// Binarize forces every pixel to 0 or 255, thresholding at >0.
func (m *Mask) Binarize() {
	for i, v := range m.Pix {
		if v > 0 {
			m.Pix[i] = 255
		}
	}
}

// CountNonZero returns the number of foreground pixels.
func (m *Mask) CountNonZero() int {
	n := 0
	for _, v := range m.Pix {
		if v > 0 {
			n++
		}
	}
	return n
}

// Empty reports whether the mask has no foreground pixels.
func (m *Mask) Empty() bool {
	for _, v := range m.Pix {
		if v > 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two masks have identical dimensions and pixels.
func (m *Mask) Equal(other *Mask) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for i, v := range m.Pix {
		if other.Pix[i] != v {
			return false
		}
	}
	return true
}
