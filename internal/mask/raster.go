package mask

import (
	"math"
	"sort"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// Rasterize fills a closed polygon into a fresh all-zero mask, writing 255
// inside and along the boundary. The fill uses even-odd scanline crossing;
// self-intersecting polygons are filled according to whatever that rule
// produces, without detection or repair.
func Rasterize(poly []utils.Point, width, height int) *Mask {
	m := New(width, height)
	if len(poly) < 3 || width <= 0 || height <= 0 {
		return m
	}

	bb := utils.BoundingBox(poly)
	yStart := utils.ClampInt(int(math.Floor(bb.MinY)), 0, height-1)
	yEnd := utils.ClampInt(int(math.Ceil(bb.MaxY)), 0, height-1)

	xs := make([]float64, 0, 8)
	for y := yStart; y <= yEnd; y++ {
		xs = xs[:0]
		fy := float64(y)
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			// Half-open rule so shared vertices count once.
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x1 := utils.ClampInt(int(math.Round(xs[i])), 0, width-1)
			x2 := utils.ClampInt(int(math.Round(xs[i+1])), 0, width-1)
			row := m.Pix[y*width : (y+1)*width]
			for x := x1; x <= x2; x++ {
				row[x] = 255
			}
		}
	}

	// Stamp the boundary so edge rows excluded by the half-open rule are part
	// of the filled region.
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		drawSegment(m, a, b)
	}
	return m
}

// drawSegment stamps a polygon edge into the mask using a Bresenham variant.
func drawSegment(m *Mask, a, b utils.Point) {
	x0 := int(math.Round(a.X))
	y0 := int(math.Round(a.Y))
	x1 := int(math.Round(b.X))
	y1 := int(math.Round(b.Y))

	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		m.Set(x0, y0, 255)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
