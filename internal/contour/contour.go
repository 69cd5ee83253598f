// Package contour extracts and simplifies closed boundary polygons of binary
// masks. An empty or degenerate mask yields no contour, which callers treat as
// "return the mask unchanged" rather than as an error.
package contour

import (
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// ExtractLargest traces the external boundaries of all foreground components
// and returns the polygon enclosing the largest area. Ties go to the first
// component discovered in scan order. Returns nil when the mask is empty or no
// component yields a valid polygon.
func ExtractLargest(m *mask.Mask) []utils.Point {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return nil
	}
	comps, labels := connectedComponents(m)
	if len(comps) == 0 {
		return nil
	}

	var best []utils.Point
	bestArea := -1.0
	for i, c := range comps {
		if c.count == 0 {
			continue
		}
		poly := traceBoundary(labels, m.Width, m.Height, i+1, c)
		if len(poly) == 0 {
			continue
		}
		if area := utils.PolygonArea(poly); area > bestArea {
			bestArea = area
			best = poly
		}
	}
	return best
}

// Simplify reduces a closed polygon with a Douglas-Peucker tolerance derived
// from its perimeter. Polygons that would degenerate below 3 points come back
// unchanged; the caller decides whether that still counts as a contour.
func Simplify(poly []utils.Point, epsilonRatio float64) []utils.Point {
	return utils.SimplifyClosedPolygon(poly, epsilonRatio)
}
