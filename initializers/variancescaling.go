package initializers

import (
	"math"
	"math/rand"
)

type varianceScaling struct {
	gen    *truncNormal
	factor float64
}

// VarianceScaling returns an Initializer that draws from a truncated normal distribution whose
// variance is factor / fan-in, where fan-in is the number of weights of the Neuron. The factor
// defaults to 1 and can be set by Factor.
func VarianceScaling(src rand.Source) *varianceScaling {
	return &varianceScaling{TruncNormal(src), 1}
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// Set is the implementation of neuralnet.Initializer
func (v *varianceScaling) Set(ws []float64) {
	if len(ws) == 0 {
		return
	}

	v.gen.SD(math.Sqrt(v.factor / float64(len(ws))))
	for i := range ws {
		ws[i] = v.gen.Gen()
	}
}
