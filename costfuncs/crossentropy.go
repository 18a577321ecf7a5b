package costfuncs

import (
	"math"
)

type crossEntropy struct{}

// CrossEntropy returns the cross-entropy cost function, which implements neuralnet.CostFunction.
// Outputs of a Network are always in (0, 1), so the logarithm is always defined.
func CrossEntropy() crossEntropy {
	return crossEntropy{}
}

// NegativeLog is a proxy for CrossEntropy
func NegativeLog() crossEntropy {
	return CrossEntropy()
}

func (c crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum -= targets[i] * math.Log(outs[i])
	}

	return sum / float64(len(outs))
}
