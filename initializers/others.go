package initializers

import "math/rand"

// LeCun is VarianceScaling with a factor of 1
func LeCun(src rand.Source) *varianceScaling {
	return VarianceScaling(src)
}

// He is VarianceScaling with a factor of 2
func He(src rand.Source) *varianceScaling {
	return VarianceScaling(src).Factor(2)
}

type constant float64

// Constant returns an Initializer that sets every weight to value. It is mostly useful for tests,
// since a network whose Neurons all start the same will keep them the same.
func Constant(value float64) constant {
	return constant(value)
}

// Set is the implementation of neuralnet.Initializer
func (c constant) Set(ws []float64) {
	for i := range ws {
		ws[i] = float64(c)
	}
}
