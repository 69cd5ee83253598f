package mask

import (
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mempool"
)

// guidedFilter runs the classic box-filter guided filter: guide and input are
// [0,1] float planes of the same dimensions, radius is the box half-width and
// eps the regularization. Returns the filtered plane.
//
//	a = cov(I,p) / (var(I) + eps)
//	b = mean(p) - a*mean(I)
//	q = mean(a)*I + mean(b)
func guidedFilter(guide, input []float64, width, height, radius int, eps float64) []float64 {
	n := width * height

	meanI := mempool.GetFloat64(n)
	meanP := mempool.GetFloat64(n)
	corrII := mempool.GetFloat64(n)
	corrIP := mempool.GetFloat64(n)
	scratch := mempool.GetFloat64(n)
	defer mempool.PutFloat64(meanI)
	defer mempool.PutFloat64(meanP)
	defer mempool.PutFloat64(corrII)
	defer mempool.PutFloat64(corrIP)
	defer mempool.PutFloat64(scratch)

	boxFilter(guide, meanI, scratch, width, height, radius)
	boxFilter(input, meanP, scratch, width, height, radius)

	prod := mempool.GetFloat64(n)
	defer mempool.PutFloat64(prod)
	for i := range n {
		prod[i] = guide[i] * guide[i]
	}
	boxFilter(prod, corrII, scratch, width, height, radius)
	for i := range n {
		prod[i] = guide[i] * input[i]
	}
	boxFilter(prod, corrIP, scratch, width, height, radius)

	a := mempool.GetFloat64(n)
	b := mempool.GetFloat64(n)
	defer mempool.PutFloat64(a)
	defer mempool.PutFloat64(b)
	for i := range n {
		varI := corrII[i] - meanI[i]*meanI[i]
		covIP := corrIP[i] - meanI[i]*meanP[i]
		a[i] = covIP / (varI + eps)
		b[i] = meanP[i] - a[i]*meanI[i]
	}

	meanA := mempool.GetFloat64(n)
	meanB := mempool.GetFloat64(n)
	defer mempool.PutFloat64(meanA)
	defer mempool.PutFloat64(meanB)
	boxFilter(a, meanA, scratch, width, height, radius)
	boxFilter(b, meanB, scratch, width, height, radius)

	out := make([]float64, n)
	for i := range n {
		out[i] = meanA[i]*guide[i] + meanB[i]
	}
	return out
}

// boxFilter computes the mean over a (2r+1)² window clipped to the image,
// written into dst. Separable two-pass moving sums keep it O(n).
func boxFilter(src, dst, scratch []float64, width, height, radius int) {
	// Horizontal pass into scratch: running sum per row with clipped window.
	for y := range height {
		row := src[y*width : (y+1)*width]
		out := scratch[y*width : (y+1)*width]
		sum := 0.0
		count := 0
		for x := 0; x <= radius && x < width; x++ {
			sum += row[x]
			count++
		}
		for x := range width {
			out[x] = sum / float64(count)
			if add := x + radius + 1; add < width {
				sum += row[add]
				count++
			}
			if drop := x - radius; drop >= 0 {
				sum -= row[drop]
				count--
			}
		}
	}
	// Vertical pass over scratch into dst.
	for x := range width {
		sum := 0.0
		count := 0
		for y := 0; y <= radius && y < height; y++ {
			sum += scratch[y*width+x]
			count++
		}
		for y := range height {
			dst[y*width+x] = sum / float64(count)
			if add := y + radius + 1; add < height {
				sum += scratch[add*width+x]
				count++
			}
			if drop := y - radius; drop >= 0 {
				sum -= scratch[drop*width+x]
				count--
			}
		}
	}
}
