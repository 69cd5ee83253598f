package utils

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPoint generates a random point.
func genPoint() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
	).Map(func(vals []interface{}) Point {
		return Point{X: vals[0].(float64), Y: vals[1].(float64)}
	})
}

// genPolygon generates a random polygon of fixed size.
func genPolygon(size int) gopter.Gen {
	return gen.SliceOfN(size, genPoint())
}

func TestSimplifyPolygon_OutputNonIncreasing(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("simplified polygon has <= input points", prop.ForAll(
		func(points []Point, epsilon float64) bool {
			simplified := SimplifyPolygon(points, epsilon)
			return len(simplified) <= len(points)
		},
		genPolygon(12),
		gen.Float64Range(0.1, 10.0),
	))

	properties.TestingRun(t)
}

func TestSimplifyPolygon_PreservesEndpoints(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("simplification preserves first and last points", prop.ForAll(
		func(points []Point, epsilon float64) bool {
			simplified := SimplifyPolygon(points, epsilon)
			if len(simplified) < 2 {
				return true
			}
			return simplified[0] == points[0] &&
				simplified[len(simplified)-1] == points[len(points)-1]
		},
		genPolygon(10),
		gen.Float64Range(0.1, 10.0),
	))

	properties.TestingRun(t)
}

func TestSimplifyClosedPolygon_NeverDegenerates(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("closed simplification keeps at least 3 points", prop.ForAll(
		func(points []Point, ratio float64) bool {
			out := SimplifyClosedPolygon(points, ratio)
			return len(out) >= 3
		},
		genPolygon(8),
		gen.Float64Range(0.001, 1.0),
	))

	properties.TestingRun(t)
}
