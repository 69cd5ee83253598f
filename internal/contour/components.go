package contour

import (
	"container/list"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
)

// compStats holds per-component pixel count and bounding box.
type compStats struct {
	count int
	minX  int
	minY  int
	maxX  int
	maxY  int
}

// connectedComponents labels 4-connected foreground components of the mask.
// Labels start at 1; background pixels stay 0.
func connectedComponents(m *mask.Mask) ([]compStats, []int) {
	w, h := m.Width, m.Height
	labels := make([]int, w*h)
	var comps []compStats
	label := 1

	for y := range h {
		for x := range w {
			idx := y*w + x
			if m.Pix[idx] > 0 && labels[idx] == 0 {
				comps = append(comps, labelComponent(m, labels, x, y, label))
				label++
			}
		}
	}
	return comps, labels
}

// labelComponent flood-fills one component via BFS starting at the seed pixel.
func labelComponent(m *mask.Mask, labels []int, startX, startY, label int) compStats {
	w, h := m.Width, m.Height
	startIdx := startY*w + startX

	st := compStats{minX: startX, minY: startY, maxX: startX, maxY: startY}
	q := list.New()
	q.PushBack(startIdx)
	labels[startIdx] = label

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		ci, ok := e.Value.(int)
		if !ok {
			continue // skip invalid
		}
		cx, cy := ci%w, ci/w

		st.count++
		if cx < st.minX {
			st.minX = cx
		}
		if cy < st.minY {
			st.minY = cy
		}
		if cx > st.maxX {
			st.maxX = cx
		}
		if cy > st.maxY {
			st.maxY = cy
		}

		for _, d := range dirs {
			nx, ny := cx+d[0], cy+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ni := ny*w + nx
			if m.Pix[ni] > 0 && labels[ni] == 0 {
				labels[ni] = label
				q.PushBack(ni)
			}
		}
	}
	return st
}
