package mask

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSmootherProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	genMaskBits := gen.SliceOfN(256, gen.UInt8Range(0, 1))

	properties.Property("fallback output is binary with unchanged dimensions", prop.ForAll(
		func(bits []uint8) bool {
			m := New(16, 16)
			for i, b := range bits {
				m.Pix[i] = b * 255
			}
			out := SmoothEdgePreserving(m, nil, SmoothConfig{})
			if out.Width != 16 || out.Height != 16 {
				return false
			}
			for _, v := range out.Pix {
				if v != 0 && v != 255 {
					return false
				}
			}
			return true
		},
		genMaskBits,
	))

	properties.Property("guided output is binary with unchanged dimensions", prop.ForAll(
		func(bits []uint8, guideSeed uint8) bool {
			m := New(16, 16)
			guide := make([]uint8, 256)
			for i, b := range bits {
				m.Pix[i] = b * 255
				guide[i] = guideSeed + uint8(i%97)
			}
			out := SmoothEdgePreserving(m, guide, SmoothConfig{
				GuidedFilterEnabled: true,
				GuidedFilterRadius:  3,
				GuidedFilterEps:     0.1,
			})
			if out.Width != 16 || out.Height != 16 {
				return false
			}
			for _, v := range out.Pix {
				if v != 0 && v != 255 {
					return false
				}
			}
			return true
		},
		genMaskBits,
		gen.UInt8(),
	))

	properties.Property("smoothing is deterministic", prop.ForAll(
		func(bits []uint8) bool {
			m := New(16, 16)
			for i, b := range bits {
				m.Pix[i] = b * 255
			}
			a := SmoothEdgePreserving(m, nil, SmoothConfig{})
			b := SmoothEdgePreserving(m, nil, SmoothConfig{})
			return a.Equal(b)
		},
		genMaskBits,
	))

	properties.TestingRun(t)
}
