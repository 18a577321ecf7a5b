package neuralnet

import (
	"gonum.org/v1/gonum/floats"
)

// Evaluate runs the inputs through the Network and returns a copy of its outputs. Every output
// is in (0, 1). If len(inputs) != InputSize(), Evaluate returns type SizeMismatchError and the
// Network is not changed.
func (net *Network) Evaluate(inputs []float64) ([]float64, error) {
	if len(inputs) != net.InputSize() {
		return nil, SizeMismatchError{net.InputSize(), len(inputs), "inputs"}
	}

	net.evaluate(inputs)

	outs := make([]float64, net.OutputSize())
	copy(outs, net.cache.values[len(net.layers)-1])
	return outs, nil
}

// evaluate fills the cache with the values of every layer
//
// assumes len(inputs) == net.InputSize()
func (net *Network) evaluate(inputs []float64) {
	net.cache.reset(net)

	copy(net.cache.values[0], inputs)
	for l := 1; l < len(net.layers); l++ {
		prev := net.cache.values[l-1]
		for i, n := range net.layers[l].neurons {
			net.cache.values[l][i] = n.activate(prev)
		}
	}
}

// Backpropagate performs one step of gradient descent on a single sample, reducing half the
// squared error between the Network's outputs and targets. It returns the outputs from before
// the weights were adjusted.
//
// If either slice has the wrong length, type SizeMismatchError is returned and the Network is not
// changed.
func (net *Network) Backpropagate(inputs, targets []float64) ([]float64, error) {
	if len(targets) != net.OutputSize() {
		return nil, SizeMismatchError{net.OutputSize(), len(targets), "targets"}
	}

	outs, err := net.Evaluate(inputs)
	if err != nil {
		return nil, err
	}

	net.getDeltas(targets)
	net.adjust()

	return outs, nil
}

// getDeltas sets the delta of every Neuron, starting at the output layer. Each layer needs the
// deltas of the one after it.
func (net *Network) getDeltas(targets []float64) {
	last := len(net.layers) - 1
	for l := last; l >= 1; l-- {
		for j, n := range net.layers[l].neurons {
			var err float64
			if l == last {
				err = n.output - targets[j]
			} else {
				for _, next := range net.layers[l+1].neurons {
					err += next.weights[j] * next.delta
				}
			}

			n.delta = err * Derivative(n.preActivation)
		}
	}
}

// adjust applies the changes given by the deltas, starting at the first layer of Neurons. It
// must only be called once every delta has been calculated.
func (net *Network) adjust() {
	for l := 1; l < len(net.layers); l++ {
		inputs := net.cache.values[l-1]
		for _, n := range net.layers[l].neurons {
			step := net.LearningRate * n.delta

			floats.AddScaled(n.weights, -step, inputs)
			n.bias -= step
		}
	}
}

// reset makes sure the scratch space has room for every layer of net. Nothing is reallocated if
// the shape is unchanged.
func (s *scratch) reset(net *Network) {
	if len(s.values) == len(net.layers) {
		fits := true
		for l := range net.layers {
			if len(s.values[l]) != net.layers[l].width {
				fits = false
				break
			}
		}

		if fits {
			return
		}
	}

	s.values = make([][]float64, len(net.layers))
	for l := range net.layers {
		s.values[l] = make([]float64, net.layers[l].width)
	}
}
