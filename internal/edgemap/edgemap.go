// Package edgemap derives a normalized gradient-magnitude edge strength map
// from a source image: grayscale conversion, a 5x5 Gaussian smoothing pass,
// 3x3 Sobel derivatives, Euclidean magnitude, then min-max normalization to
// the full [0,255] range. The computation is deterministic and holds no state.
package edgemap

import (
	"errors"
	"image"
	"math"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/mempool"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// EdgeMap is a row-major H×W edge strength grid in [0,255]. Max caches the
// maximum value (255 for any non-uniform image, 0 for a uniform one).
type EdgeMap struct {
	Width  int
	Height int
	Mag    []uint8
	Max    uint8
}

// At returns the edge strength at (x, y). Out-of-bounds coordinates read as 0.
func (e *EdgeMap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= e.Width || y >= e.Height {
		return 0
	}
	return e.Mag[y*e.Width+x]
}

// Compute builds the edge map for an image.
func Compute(img image.Image) (*EdgeMap, error) {
	if img == nil {
		return nil, &utils.ImageProcessingError{Operation: "edgemap", Err: errors.New("input image is nil")}
	}
	gray, w, h, err := utils.GrayscalePlane(img)
	if err != nil {
		return nil, err
	}
	return FromGray(gray, w, h)
}

// FromGray builds the edge map from an intensity plane.
func FromGray(gray []uint8, width, height int) (*EdgeMap, error) {
	if width <= 0 || height <= 0 || len(gray) != width*height {
		return nil, &utils.ImageProcessingError{Operation: "edgemap", Err: errors.New("invalid intensity plane")}
	}

	blurred := mempool.GetUint8(width * height)
	defer mempool.PutUint8(blurred)
	gaussian5x5(gray, blurred, width, height)

	mag := mempool.GetFloat64(width * height)
	defer mempool.PutFloat64(mag)
	maxMag, minMag := sobelMagnitude(blurred, mag, width, height)

	out := &EdgeMap{Width: width, Height: height, Mag: make([]uint8, width*height)}
	if maxMag > minMag {
		scale := 255.0 / (maxMag - minMag)
		for i, v := range mag {
			out.Mag[i] = uint8(math.Round((v - minMag) * scale))
		}
		out.Max = 255
	}
	return out, nil
}

// gaussian5x5 applies a separable binomial [1 4 6 4 1]/16 smoothing kernel
// with clamped borders.
func gaussian5x5(src, dst []uint8, width, height int) {
	weights := [5]int{1, 4, 6, 4, 1}
	tmp := mempool.GetUint8(width * height)
	defer mempool.PutUint8(tmp)

	clampX := func(x int) int { return utils.ClampInt(x, 0, width-1) }
	clampY := func(y int) int { return utils.ClampInt(y, 0, height-1) }

	for y := range height {
		for x := range width {
			sum := 0
			for k := -2; k <= 2; k++ {
				sum += weights[k+2] * int(src[y*width+clampX(x+k)])
			}
			tmp[y*width+x] = uint8((sum + 8) / 16)
		}
	}
	for y := range height {
		for x := range width {
			sum := 0
			for k := -2; k <= 2; k++ {
				sum += weights[k+2] * int(tmp[clampY(y+k)*width+x])
			}
			dst[y*width+x] = uint8((sum + 8) / 16)
		}
	}
}

// sobelMagnitude computes the Euclidean gradient magnitude from 3x3 Sobel
// derivatives, returning the observed max and min for normalization.
func sobelMagnitude(src []uint8, dst []float64, width, height int) (maxMag, minMag float64) {
	at := func(x, y int) int {
		x = utils.ClampInt(x, 0, width-1)
		y = utils.ClampInt(y, 0, height-1)
		return int(src[y*width+x])
	}
	minMag = math.Inf(1)
	maxMag = math.Inf(-1)
	for y := range height {
		for x := range width {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			v := math.Hypot(float64(gx), float64(gy))
			dst[y*width+x] = v
			if v > maxMag {
				maxMag = v
			}
			if v < minMag {
				minMag = v
			}
		}
	}
	return maxMag, minMag
}
