package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEllipticalKernelShapes(t *testing.T) {
	k1 := EllipticalKernel(1)
	require.Equal(t, 1, k1.Size)
	require.Equal(t, [][2]int{{0, 0}}, k1.Offsets)

	k3 := EllipticalKernel(3)
	require.Equal(t, 3, k3.Size)
	// The 3x3 ellipse is the cross: row spans 1,3,1 exclude the corners.
	require.Len(t, k3.Offsets, 5)
	require.Contains(t, k3.Offsets, [2]int{0, 0})
	require.Contains(t, k3.Offsets, [2]int{-1, 0})
	require.Contains(t, k3.Offsets, [2]int{1, 0})
	require.Contains(t, k3.Offsets, [2]int{0, -1})
	require.Contains(t, k3.Offsets, [2]int{0, 1})
	require.NotContains(t, k3.Offsets, [2]int{-1, -1})
	require.NotContains(t, k3.Offsets, [2]int{1, 1})

	k5 := EllipticalKernel(5)
	require.Equal(t, 5, k5.Size)
	// Rows have spans 1,5,5,5,1: the corner pixels are excluded.
	require.Len(t, k5.Offsets, 17)
	require.NotContains(t, k5.Offsets, [2]int{-2, -2})
	require.NotContains(t, k5.Offsets, [2]int{2, 2})
	require.Contains(t, k5.Offsets, [2]int{-2, 0})
	require.Contains(t, k5.Offsets, [2]int{0, -2})
}

func TestEllipticalKernelRoundsSizeUp(t *testing.T) {
	k := EllipticalKernel(4)
	require.Equal(t, 5, k.Size)
	k0 := EllipticalKernel(0)
	require.Equal(t, 1, k0.Size)
}

func TestDilateErodeSinglePixel(t *testing.T) {
	m := New(9, 9)
	m.Set(4, 4, 255)
	k := EllipticalKernel(3)

	d := Dilate(m, k)
	require.Equal(t, 5, d.CountNonZero())
	require.Equal(t, uint8(255), d.At(4, 4))
	require.Equal(t, uint8(255), d.At(3, 4))
	require.Equal(t, uint8(255), d.At(5, 4))
	require.Equal(t, uint8(255), d.At(4, 3))
	require.Equal(t, uint8(255), d.At(4, 5))
	require.Equal(t, uint8(0), d.At(3, 3))
	require.Equal(t, uint8(0), d.At(5, 5))

	e := Erode(m, k)
	require.True(t, e.Empty())
}

func TestErodeBorderIsIdentity(t *testing.T) {
	// A full mask must survive erosion: pixels outside the image never count
	// as background.
	m := New(6, 6)
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	e := Erode(m, EllipticalKernel(5))
	require.Equal(t, 36, e.CountNonZero())
}

func TestCloseFillsSmallHole(t *testing.T) {
	m := New(12, 12)
	for y := 2; y <= 9; y++ {
		for x := 2; x <= 9; x++ {
			m.Set(x, y, 255)
		}
	}
	m.Set(5, 5, 0)

	c := Close(m, EllipticalKernel(3))
	require.Equal(t, uint8(255), c.At(5, 5))
	require.Equal(t, 64, c.CountNonZero())
}

func TestOpenRemovesSpeck(t *testing.T) {
	m := New(12, 12)
	for y := 2; y <= 9; y++ {
		for x := 2; x <= 9; x++ {
			m.Set(x, y, 255)
		}
	}
	m.Set(11, 11, 255)

	o := Open(m, EllipticalKernel(3))
	require.Equal(t, uint8(0), o.At(11, 11))
	// The cross kernel rounds off the square's corners.
	require.Equal(t, 60, o.CountNonZero())
	for _, c := range [][2]int{{2, 2}, {9, 2}, {2, 9}, {9, 9}} {
		require.Equal(t, uint8(0), o.At(c[0], c[1]))
	}
	require.Equal(t, uint8(255), o.At(3, 2))
	require.Equal(t, uint8(255), o.At(5, 5))
}

func TestMorphologyPreservesBinaryDomain(t *testing.T) {
	m := New(8, 8)
	m.Set(3, 3, 255)
	m.Set(4, 4, 255)
	for _, out := range []*Mask{
		Dilate(m, EllipticalKernel(3)),
		Erode(m, EllipticalKernel(3)),
		Close(m, EllipticalKernel(5)),
		Open(m, EllipticalKernel(5)),
	} {
		for _, v := range out.Pix {
			require.Contains(t, []uint8{0, 255}, v)
		}
	}
}
