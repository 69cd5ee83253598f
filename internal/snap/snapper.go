// Package snap relocates contour points onto nearby strong image edges using
// a bounded best-first search per point, and sequences those searches into a
// full contour refinement. The search explores a clipped square window around
// each point ordered by accumulated path cost plus a proximity heuristic, and
// selects the cheapest node seen over the whole exploration. There is no goal
// node; the frontier simply exhausts the window.
package snap

import (
	"container/heap"
	"math"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/edgemap"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// Params carries the search weights.
type Params struct {
	// Half-width of the search window around each contour point.
	SearchRadius int
	// Weight of the per-step path cost (diagonal steps cost more than axial
	// ones, proportional to Euclidean step length).
	LambdaSmooth float64
	// Weight of the Euclidean distance back to the original point, used as
	// the frontier-ordering heuristic and in final node selection.
	LambdaProx float64
}

// searchNode is one frontier entry. Nodes are scoped to a single Point call.
type searchNode struct {
	f   float64
	x   int
	y   int
	g   float64
	seq int // insertion sequence, breaks f ties deterministically
}

type nodeHeap []searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(searchNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// 8-connected neighborhood offsets.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// Point snaps a single contour point toward a locally strong edge within the
// search window, balancing edge strength, step smoothness, and proximity to
// the original location. prev is the anchor threaded from the preceding snap
// in the sequential fold; it scopes the ordering of calls and contributes no
// cost term of its own. The answer is the visited node minimizing g-score
// plus heuristic over all visited nodes, never merely the last frontier
// state. Any degenerate window falls back to returning p unchanged.
func Point(p utils.Point, _ *utils.Point, em *edgemap.EdgeMap, params Params) utils.Point {
	if em == nil || params.SearchRadius <= 0 {
		return p
	}

	px := int(math.Round(p.X))
	py := int(math.Round(p.Y))
	r := params.SearchRadius

	// Window is clipped half-open on the max side.
	xMin := max(0, px-r)
	xMax := min(em.Width, px+r)
	yMin := max(0, py-r)
	yMax := min(em.Height, py+r)
	ww := xMax - xMin
	wh := yMax - yMin
	if ww <= 0 || wh <= 0 || px < xMin || px >= xMax || py < yMin || py >= yMax {
		return p
	}

	maxEdge := float64(em.Max)
	heuristic := func(x, y int) float64 {
		return params.LambdaProx * math.Hypot(float64(x-px), float64(y-py))
	}

	local := func(x, y int) int { return (y-yMin)*ww + (x - xMin) }
	gScores := make([]float64, ww*wh)
	for i := range gScores {
		gScores[i] = math.Inf(1)
	}
	visited := make([]bool, ww*wh)
	visitOrder := make([]int, 0, ww*wh)

	frontier := &nodeHeap{}
	seq := 0
	gScores[local(px, py)] = 0
	heap.Push(frontier, searchNode{f: 0, x: px, y: py, g: 0, seq: seq})

	// The frontier is bounded by the window, but cap iterations anyway to
	// guard against pathological parameter choices.
	maxIter := 16 * ww * wh
	for iter := 0; frontier.Len() > 0 && iter < maxIter; iter++ {
		cur := heap.Pop(frontier).(searchNode)
		li := local(cur.x, cur.y)
		if visited[li] {
			continue
		}
		visited[li] = true
		visitOrder = append(visitOrder, li)

		for _, off := range neighborOffsets {
			nx, ny := cur.x+off[0], cur.y+off[1]
			if nx < xMin || nx >= xMax || ny < yMin || ny >= yMax {
				continue
			}
			edgeCost := maxEdge - float64(em.Mag[ny*em.Width+nx])
			stepCost := params.LambdaSmooth * math.Hypot(float64(off[0]), float64(off[1]))
			tentative := cur.g + edgeCost + stepCost
			ni := local(nx, ny)
			if tentative < gScores[ni] {
				gScores[ni] = tentative
				seq++
				heap.Push(frontier, searchNode{
					f:   tentative + heuristic(nx, ny),
					x:   nx,
					y:   ny,
					g:   tentative,
					seq: seq,
				})
			}
		}
	}

	if len(visitOrder) == 0 {
		return p
	}
	bestIdx := visitOrder[0]
	bestCost := math.Inf(1)
	for _, li := range visitOrder {
		x := xMin + li%ww
		y := yMin + li/ww
		if cost := gScores[li] + heuristic(x, y); cost < bestCost {
			bestCost = cost
			bestIdx = li
		}
	}
	return utils.Point{
		X: float64(xMin + bestIdx%ww),
		Y: float64(yMin + bestIdx/ww),
	}
}
