package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimplifyPolygon(t *testing.T) {
	tests := []struct {
		name           string
		points         []Point
		epsilon        float64
		expectedMinLen int
		expectedMaxLen int
	}{
		{
			name:           "empty polygon",
			points:         []Point{},
			epsilon:        1.0,
			expectedMinLen: 0,
			expectedMaxLen: 0,
		},
		{
			name:           "triangle (no simplification needed)",
			points:         []Point{{0, 0}, {10, 0}, {5, 10}},
			epsilon:        1.0,
			expectedMinLen: 3,
			expectedMaxLen: 3,
		},
		{
			name: "rectangle with extra points on edges",
			points: []Point{
				{0, 0}, {5, 0}, {10, 0},
				{10, 5}, {10, 10},
				{5, 10}, {0, 10},
				{0, 5},
			},
			epsilon:        2.0,
			expectedMinLen: 4,
			expectedMaxLen: 6,
		},
		{
			name:           "zero epsilon keeps everything",
			points:         []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
			epsilon:        0.0,
			expectedMinLen: 4,
			expectedMaxLen: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SimplifyPolygon(tt.points, tt.epsilon)
			require.GreaterOrEqual(t, len(result), tt.expectedMinLen)
			require.LessOrEqual(t, len(result), tt.expectedMaxLen)
			if len(tt.points) > 0 {
				require.LessOrEqual(t, len(result), len(tt.points))
			}
		})
	}
}

func TestSimplifyClosedPolygon_Square(t *testing.T) {
	// Square with collinear extra points along every edge.
	pts := []Point{
		{0, 0}, {5, 0}, {10, 0},
		{10, 5}, {10, 10},
		{5, 10}, {0, 10},
		{0, 5},
	}
	out := SimplifyClosedPolygon(pts, 0.01)
	require.LessOrEqual(t, len(out), len(pts))
	require.GreaterOrEqual(t, len(out), 3)
}

func TestSimplifyClosedPolygon_NeverBelowThreePoints(t *testing.T) {
	// Aggressive tolerance would normally strip all interior points; the
	// closed variant must return the input untouched instead.
	pts := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	out := SimplifyClosedPolygon(pts, 100.0)
	require.GreaterOrEqual(t, len(out), 3)
}

func TestSimplifyClosedPolygon_Degenerate(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	out := SimplifyClosedPolygon(pts, 0.01)
	require.Equal(t, pts, out)
}

func TestPolygonPerimeter(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	require.InDelta(t, 30.0, PolygonPerimeter(square, false), 1e-9)
	require.InDelta(t, 40.0, PolygonPerimeter(square, true), 1e-9)
	require.Zero(t, PolygonPerimeter([]Point{{1, 2}}, true))
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want float64
	}{
		{"square", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, 100},
		{"triangle", []Point{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"reversed winding", []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, 100},
		{"degenerate segment", []Point{{0, 0}, {5, 5}}, 0},
		{"collinear", []Point{{0, 0}, {1, 1}, {2, 2}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, PolygonArea(tt.pts), 1e-9)
		})
	}
}
