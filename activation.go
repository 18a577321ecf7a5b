package neuralnet

import (
	"math"
)

// DerivativeFloor is returned by Derivative when x² is too large to represent.
const DerivativeFloor float64 = 1e-12

// Response is the activation function shared by every Neuron: atan(x)/π + 1/2. It maps the reals
// onto (0, 1), is strictly increasing and gives 0.5 at 0.
func Response(x float64) float64 {
	return math.Atan(x)/math.Pi + 0.5
}

// Derivative is the derivative of Response, up to a constant factor: 1/(x²+1).
//
// If x² overflows, DerivativeFloor is returned instead.
func Derivative(x float64) float64 {
	sq := x * x
	if math.IsInf(sq, 0) {
		return DerivativeFloor
	}

	return 1 / (sq + 1)
}
