// Package metrics scores binary masks against their source image (edge
// alignment, region homogeneity) and against each other (IoU, Dice). All
// degenerate inputs resolve to defined neutral scores instead of errors.
package metrics

import (
	"image"
	"math"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/contour"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/edgemap"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// dilationKernelSize is the structuring element size used to tolerate small
// contour-to-edge misalignment (2-pixel radius).
const dilationKernelSize = 5

// Scores holds the mask-vs-image quality scores.
type Scores struct {
	EdgeAlignment     float64 `json:"edge_alignment_score" yaml:"edge_alignment_score"`
	RegionHomogeneity float64 `json:"region_homogeneity_score" yaml:"region_homogeneity_score"`
}

// Overlap holds the mask-vs-mask agreement scores.
type Overlap struct {
	IoU  float64 `json:"iou" yaml:"iou"`
	Dice float64 `json:"dice" yaml:"dice"`
}

// Compute scores a mask against its source image. A nil mask yields neutral
// zero scores without touching the image.
func Compute(m *mask.Mask, img image.Image, edgeThreshold int) (Scores, error) {
	if m == nil {
		return Scores{}, nil
	}
	gray, w, h, err := utils.GrayscalePlane(img)
	if err != nil {
		return Scores{}, err
	}
	em, err := edgemap.FromGray(gray, w, h)
	if err != nil {
		return Scores{}, err
	}

	bin := m.Clone()
	bin.Binarize()

	return Scores{
		EdgeAlignment:     edgeAlignment(bin, em, edgeThreshold),
		RegionHomogeneity: regionHomogeneity(bin, gray),
	}, nil
}

// edgeAlignment measures the fraction of the mask's largest-contour points
// that land on dilated strong edges of the image.
func edgeAlignment(m *mask.Mask, em *edgemap.EdgeMap, edgeThreshold int) float64 {
	poly := contour.ExtractLargest(m)
	if len(poly) == 0 {
		return 0
	}

	strong := mask.New(em.Width, em.Height)
	for i, v := range em.Mag {
		if int(v) > edgeThreshold {
			strong.Pix[i] = 255
		}
	}
	dilated := mask.Dilate(strong, mask.EllipticalKernel(dilationKernelSize))

	aligned := 0
	for _, p := range poly {
		if dilated.At(int(p.X), int(p.Y)) > 0 {
			aligned++
		}
	}
	return float64(aligned) / float64(len(poly))
}

// regionHomogeneity maps the variance of masked intensities, normalized by the
// whole-image variance, through an exponential decay. Lower variance inside
// the mask means a more homogeneous region and a score closer to 1.
func regionHomogeneity(m *mask.Mask, gray []uint8) float64 {
	var maskSum, maskSumSq float64
	maskCount := 0
	var imgSum, imgSumSq float64
	for i, v := range gray {
		f := float64(v)
		imgSum += f
		imgSumSq += f * f
		if m.Pix[i] > 0 {
			maskSum += f
			maskSumSq += f * f
			maskCount++
		}
	}
	if maskCount == 0 {
		return 0
	}

	maskVar := 0.0
	if maskCount > 1 {
		mean := maskSum / float64(maskCount)
		maskVar = maskSumSq/float64(maskCount) - mean*mean
		if maskVar < 0 {
			maskVar = 0 // numeric guard
		}
	}
	n := float64(len(gray))
	imgMean := imgSum / n
	imgVar := imgSumSq/n - imgMean*imgMean
	if imgVar <= 0 {
		imgVar = 1.0 // avoid division by zero on uniform images
	}
	return math.Exp(-math.Min(maskVar/imgVar, 10.0))
}

// ComputeOverlap measures IoU and Dice agreement between two masks. Nil or
// mismatched masks yield neutral zero scores.
func ComputeOverlap(a, b *mask.Mask) Overlap {
	if a == nil || b == nil || a.Width != b.Width || a.Height != b.Height {
		return Overlap{}
	}
	inter, union, areaA, areaB := 0, 0, 0, 0
	for i := range a.Pix {
		pa := a.Pix[i] > 0
		pb := b.Pix[i] > 0
		if pa {
			areaA++
		}
		if pb {
			areaB++
		}
		if pa && pb {
			inter++
		}
		if pa || pb {
			union++
		}
	}
	out := Overlap{}
	if union > 0 {
		out.IoU = float64(inter) / float64(union)
	}
	if areaA+areaB > 0 {
		out.Dice = 2 * float64(inter) / float64(areaA+areaB)
	}
	return out
}
