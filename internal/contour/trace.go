package contour

import "github.com/Hari-Shankar-Karthik/masklasso/internal/utils"

// traceBoundary extracts the external boundary polygon of one labeled
// component using Moore-Neighbor tracing restricted to the component's AABB.
// Returned points are pixel coordinates, collinear runs collapsed.
func traceBoundary(labels []int, w, h, label int, st compStats) []utils.Point {
	if label <= 0 || len(labels) != w*h {
		return nil
	}

	sx, sy := findStartPixel(labels, w, h, label, st)
	if sx == -1 {
		return nil
	}

	pts := make([]utils.Point, 0, 64)
	addPoint := func(x, y int) {
		p := utils.Point{X: float64(x), Y: float64(y)}
		n := len(pts)
		if n >= 2 {
			a := pts[n-2]
			b := pts[n-1]
			// Drop b when a, b, p are collinear: (b-a) x (p-b) == 0
			cross := (b.X-a.X)*(p.Y-b.Y) - (b.Y-a.Y)*(p.X-b.X)
			if cross == 0 {
				pts = pts[:n-1]
			}
		}
		pts = append(pts, p)
	}

	cx, cy := sx, sy
	bx, by := sx-1, sy // backtrack to the left of start
	addPoint(cx, cy)

	// The walk is a deterministic function of (pixel, entry direction), so
	// leaving the start pixel in the same direction twice means the lap is
	// closed. A boundary walk visits each component pixel a bounded number
	// of times, so cap the steps by the component size rather than the image
	// area; hitting the cap is a tracing bug, and the tight bound keeps it
	// from degenerating into a many-lap polygon.
	firstX, firstY := -1, -1
	maxSteps := st.count*4 + 8

	for steps := 0; steps < maxSteps; steps++ {
		nx, ny, nbx, nby, found := nextBoundaryPixel(labels, w, h, label, cx, cy, bx, by)
		if !found {
			break
		}
		if cx == sx && cy == sy {
			if firstX == -1 {
				firstX, firstY = nx, ny
			} else if nx == firstX && ny == firstY {
				break
			}
		}
		bx, by = nbx, nby
		cx, cy = nx, ny

		if last := pts[len(pts)-1]; last.X != float64(cx) || last.Y != float64(cy) {
			addPoint(cx, cy)
		}
	}

	// Remove duplicated closing point if present
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// findStartPixel finds the first boundary pixel of the component in scan order.
func findStartPixel(labels []int, w, h, label int, st compStats) (int, int) {
	for y := st.minY; y <= st.maxY; y++ {
		for x := st.minX; x <= st.maxX; x++ {
			if isBoundaryPixel(labels, w, h, label, x, y) {
				return x, y
			}
		}
	}
	// Fallback: any pixel of the label
	for y := st.minY; y <= st.maxY; y++ {
		for x := st.minX; x <= st.maxX; x++ {
			if isLabelPixel(labels, w, h, label, x, y) {
				return x, y
			}
		}
	}
	return -1, -1
}

func isBoundaryPixel(labels []int, w, h, label, x, y int) bool {
	if !isLabelPixel(labels, w, h, label, x, y) {
		return false
	}
	return !isLabelPixel(labels, w, h, label, x+1, y) ||
		!isLabelPixel(labels, w, h, label, x-1, y) ||
		!isLabelPixel(labels, w, h, label, x, y+1) ||
		!isLabelPixel(labels, w, h, label, x, y-1)
}

func isLabelPixel(labels []int, w, h, label, x, y int) bool {
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return labels[y*w+x] == label
}

// 8-neighborhood clockwise order: E, SE, S, SW, W, NW, N, NE.
var (
	mooreDx = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	mooreDy = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// nextBoundaryPixel scans the Moore neighborhood clockwise starting just past
// the backtrack direction and returns the next component pixel together with
// its backtrack position: the background neighbor examined immediately before
// it. Consecutive ring positions are adjacent, so the backtrack is always a
// neighbor of the returned pixel and the next scan resumes from it.
func nextBoundaryPixel(labels []int, w, h, label, cx, cy, bx, by int) (int, int, int, int, bool) {
	start := 0
	dx, dy := bx-cx, by-cy
	for i := range 8 {
		if mooreDx[i] == dx && mooreDy[i] == dy {
			start = (i + 1) % 8
			break
		}
	}

	for k := range 8 {
		i := (start + k) % 8
		tx, ty := cx+mooreDx[i], cy+mooreDy[i]
		if isLabelPixel(labels, w, h, label, tx, ty) {
			return tx, ty, bx, by, true
		}
		// advance backtrack to this neighbor for clockwise scanning
		bx, by = tx, ty
	}
	return 0, 0, bx, by, false
}
