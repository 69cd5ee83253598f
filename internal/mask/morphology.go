package mask

import (
	"math"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/mempool"
)

// Kernel is a flat structuring element described by its neighborhood offsets.
type Kernel struct {
	Size    int
	Offsets [][2]int // (dx, dy) pairs included in the element
}

// EllipticalKernel builds an elliptical structuring element of the given odd
// size, using the same row-span construction OpenCV applies to MORPH_ELLIPSE.
func EllipticalKernel(size int) Kernel {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	r := size / 2
	k := Kernel{Size: size}
	if r == 0 {
		k.Offsets = [][2]int{{0, 0}}
		return k
	}
	for dy := -r; dy <= r; dy++ {
		span := int(float64(r)*math.Sqrt(1.0-float64(dy*dy)/float64(r*r)) + 0.5)
		for dx := -span; dx <= span; dx++ {
			k.Offsets = append(k.Offsets, [2]int{dx, dy})
		}
	}
	return k
}

// Dilate expands foreground regions by the structuring element.
func Dilate(m *Mask, k Kernel) *Mask {
	out := New(m.Width, m.Height)
	applyMorph(m, out, k, true)
	return out
}

// Erode shrinks foreground regions by the structuring element.
func Erode(m *Mask, k Kernel) *Mask {
	out := New(m.Width, m.Height)
	applyMorph(m, out, k, false)
	return out
}

// Close performs dilation followed by erosion, filling small gaps.
func Close(m *Mask, k Kernel) *Mask {
	tmp := &Mask{Width: m.Width, Height: m.Height, Pix: mempool.GetUint8(m.Width * m.Height)}
	defer mempool.PutUint8(tmp.Pix)
	applyMorph(m, tmp, k, true)
	out := New(m.Width, m.Height)
	applyMorph(tmp, out, k, false)
	return out
}

// Open performs erosion followed by dilation, removing small noise.
func Open(m *Mask, k Kernel) *Mask {
	tmp := &Mask{Width: m.Width, Height: m.Height, Pix: mempool.GetUint8(m.Width * m.Height)}
	defer mempool.PutUint8(tmp.Pix)
	applyMorph(m, tmp, k, false)
	out := New(m.Width, m.Height)
	applyMorph(tmp, out, k, true)
	return out
}

// applyMorph writes the dilation (max) or erosion (min) of src into dst.
// Out-of-bounds neighbors read as the identity value of the operation, so the
// image border never erodes foreground or dilates background on its own.
func applyMorph(src, dst *Mask, k Kernel, dilate bool) {
	w, h := src.Width, src.Height
	for y := range h {
		for x := range w {
			var v uint8
			if !dilate {
				v = 255
			}
			for _, off := range k.Offsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				s := src.Pix[ny*w+nx]
				if dilate {
					if s > v {
						v = s
					}
				} else if s < v {
					v = s
				}
			}
			dst.Pix[y*w+x] = v
		}
	}
}
