package edgemap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func uniformGray(w, h int, v uint8) []uint8 {
	plane := make([]uint8, w*h)
	for i := range plane {
		plane[i] = v
	}
	return plane
}

func TestFromGrayUniformImage(t *testing.T) {
	em, err := FromGray(uniformGray(16, 12, 77), 16, 12)
	require.NoError(t, err)
	require.Equal(t, 16, em.Width)
	require.Equal(t, 12, em.Height)
	require.Equal(t, uint8(0), em.Max)
	for _, v := range em.Mag {
		require.Equal(t, uint8(0), v)
	}
}

func TestFromGrayStepEdge(t *testing.T) {
	w, h := 20, 20
	plane := make([]uint8, w*h)
	for y := range h {
		for x := range w {
			if x >= 10 {
				plane[y*w+x] = 255
			}
		}
	}
	em, err := FromGray(plane, w, h)
	require.NoError(t, err)
	require.Equal(t, uint8(255), em.Max)

	// The strongest response sits on the step, far from the flat regions.
	require.Greater(t, em.At(10, 10), em.At(2, 10))
	require.Greater(t, em.At(9, 10), em.At(17, 10))
}

func TestFromGrayNormalizationSpansFullRange(t *testing.T) {
	w, h := 20, 20
	plane := make([]uint8, w*h)
	for y := range h {
		for x := range w {
			if x >= 10 {
				plane[y*w+x] = 255
			}
		}
	}
	em, err := FromGray(plane, w, h)
	require.NoError(t, err)

	var sawMin, sawMax bool
	for _, v := range em.Mag {
		if v == 0 {
			sawMin = true
		}
		if v == 255 {
			sawMax = true
		}
	}
	require.True(t, sawMin)
	require.True(t, sawMax)
}

func TestFromGrayInvalidPlane(t *testing.T) {
	tests := []struct {
		name  string
		plane []uint8
		w, h  int
	}{
		{"zero width", uniformGray(4, 4, 0), 0, 4},
		{"zero height", uniformGray(4, 4, 0), 4, 0},
		{"length mismatch", uniformGray(3, 3, 0), 4, 4},
		{"nil plane", nil, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGray(tt.plane, tt.w, tt.h)
			require.Error(t, err)
		})
	}
}

func TestComputeNilImage(t *testing.T) {
	_, err := Compute(nil)
	require.Error(t, err)
}

func TestComputeFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	for y := range 12 {
		for x := range 12 {
			c := uint8(0)
			if x >= 6 {
				c = 255
			}
			img.Set(x, y, color.RGBA{R: c, G: c, B: c, A: 255})
		}
	}
	em, err := Compute(img)
	require.NoError(t, err)
	require.Equal(t, uint8(255), em.Max)
}

func TestAtOutOfBounds(t *testing.T) {
	em, err := FromGray(uniformGray(4, 4, 10), 4, 4)
	require.NoError(t, err)
	require.Equal(t, uint8(0), em.At(-1, 0))
	require.Equal(t, uint8(0), em.At(0, -1))
	require.Equal(t, uint8(0), em.At(4, 0))
	require.Equal(t, uint8(0), em.At(0, 4))
}

func TestFromGrayDeterministic(t *testing.T) {
	w, h := 15, 11
	plane := make([]uint8, w*h)
	for i := range plane {
		plane[i] = uint8((i * 37) % 251)
	}
	a, err := FromGray(plane, w, h)
	require.NoError(t, err)
	b, err := FromGray(plane, w, h)
	require.NoError(t, err)
	require.Equal(t, a.Mag, b.Mag)
	require.Equal(t, a.Max, b.Max)
}
