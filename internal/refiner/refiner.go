// Package refiner orchestrates the mask refinement pipeline: contour
// extraction and simplification, sequential edge snapping, polygon
// rasterization, and edge-preserving post-filtering. Each invocation is a
// pure, single-threaded computation over its own copies of the inputs;
// independent invocations may run concurrently.
package refiner

import (
	"errors"
	"image"
	"log/slog"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/config"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/contour"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/edgemap"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/snap"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// Refine snaps a coarse binary mask's boundary onto true image edges and
// returns a fresh refined mask. The input mask and image are never mutated.
// A mask with no usable contour comes back as an unmodified copy; only image
// decode problems abort the refinement.
func Refine(m *mask.Mask, img image.Image, cfg *config.RefineConfig) (*mask.Mask, error) {
	if m == nil {
		return nil, errors.New("input mask is nil")
	}
	if img == nil {
		return nil, &utils.ImageProcessingError{Operation: "decode", Err: errors.New("input image is nil")}
	}

	bin := m.Clone()
	bin.Binarize()

	poly := contour.ExtractLargest(bin)
	if len(poly) == 0 {
		slog.Debug("no contour found, returning mask unchanged")
		return bin, nil
	}

	gray, w, h, err := utils.GrayscalePlane(img)
	if err != nil {
		return nil, err
	}
	if w != m.Width || h != m.Height {
		return nil, &utils.ImageProcessingError{
			Operation: "refine",
			Err:       errors.New("mask and image dimensions differ"),
		}
	}
	em, err := edgemap.FromGray(gray, w, h)
	if err != nil {
		return nil, err
	}

	simplified := contour.Simplify(poly, cfg.SimplifyEpsilonRatio)
	if len(simplified) < 3 {
		slog.Debug("contour degenerated during simplification, returning mask unchanged",
			"points", len(simplified))
		return bin, nil
	}
	slog.Debug("snapping contour",
		"points", len(simplified),
		"original_points", len(poly),
		"search_radius", cfg.SearchRadius)

	refined := snap.Contour(simplified, em, snap.Params{
		SearchRadius: cfg.SearchRadius,
		LambdaSmooth: cfg.LambdaSmooth,
		LambdaProx:   cfg.LambdaProx,
	})

	raw := mask.Rasterize(refined, m.Width, m.Height)
	out := mask.SmoothEdgePreserving(raw, gray, mask.SmoothConfig{
		GuidedFilterEnabled: cfg.GuidedFilterEnabled,
		GuidedFilterRadius:  cfg.GuidedFilterRadius,
		GuidedFilterEps:     cfg.GuidedFilterEps,
	})
	return out, nil
}
