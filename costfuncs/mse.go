package costfuncs

import (
	"gonum.org/v1/gonum/floats"
)

type mse struct{}

// MSE returns the mean squared error cost function, which implements neuralnet.CostFunction.
func MSE() mse {
	return mse{}
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) Cost(outs, targets []float64) float64 {
	d := floats.Distance(outs, targets, 2)
	return d * d / float64(len(outs))
}
