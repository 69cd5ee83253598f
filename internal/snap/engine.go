package snap

import (
	"github.com/Hari-Shankar-Karthik/masklasso/internal/edgemap"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// Contour snaps every point of a polygon in order, threading each snapped
// output point as the anchor for the next call. The fold is strictly
// sequential: every snap depends on its predecessor, so the per-point
// searches of one contour must not run concurrently. The refined polygon has
// the same point count and ordering as the input.
func Contour(poly []utils.Point, em *edgemap.EdgeMap, params Params) []utils.Point {
	refined := make([]utils.Point, 0, len(poly))
	var prev *utils.Point
	for _, p := range poly {
		snapped := Point(p, prev, em, params)
		refined = append(refined, snapped)
		prev = &refined[len(refined)-1]
	}
	return refined
}
