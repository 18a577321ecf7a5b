package neuralnet

import (
	"gonum.org/v1/gonum/mat"
)

// Copy returns a deep copy of the Network. The two share no memory; changes to one never affect
// the other. The copy has the same LearningRate but has not been evaluated.
func (net *Network) Copy() *Network {
	cp := newNetwork(net.InputSize())
	cp.LearningRate = net.LearningRate

	for l := 1; l < len(net.layers); l++ {
		ns := make([]*Neuron, len(net.layers[l].neurons))
		for i, n := range net.layers[l].neurons {
			ns[i] = n.clone()
		}

		cp.layers = append(cp.layers, layer{len(ns), ns})
	}

	// binding can't fail: the weights were already valid
	if err := cp.bindAll(nil); err != nil {
		panic(err)
	}

	return cp
}

// Reverse returns a new Network with the input and output sizes swapped. The layers are taken in
// reverse order, and each weight matrix is transposed, so that the weight between two values is
// kept when the connection between them is turned around.
//
// Biases can't be turned around. Instead, each new layer takes the biases of the original layer
// with the same width: the new layer k gets the biases of the original layer L-k, for a Network
// with L layers of Neurons. The last new layer corresponds to the original inputs, which have no
// biases, so its biases are all zero. Because of this, Reverse is not an inverse of anything:
// applied twice, it gives back every weight and hidden bias, but the output biases become zero.
// The result will need retraining before it is useful.
func (net *Network) Reverse() *Network {
	last := len(net.layers) - 1

	rev := newNetwork(net.OutputSize())
	rev.LearningRate = net.LearningRate

	for k := 1; k <= last; k++ {
		orig := last - k + 1
		src := net.layers[orig]
		width := net.layers[orig-1].width

		weights := mat.NewDense(src.width, width, nil)
		for i, n := range src.neurons {
			weights.SetRow(i, n.weights)
		}
		transposed := weights.T()

		ns := make([]*Neuron, width)
		for i := range ns {
			var bias float64
			if orig > 1 {
				bias = net.layers[orig-1].neurons[i].bias
			}

			ns[i] = NewNeuron(k, mat.Row(nil, i, transposed), bias)
		}

		rev.layers = append(rev.layers, layer{width, ns})
	}

	if err := rev.bindAll(nil); err != nil {
		panic(err)
	}

	return rev
}

// Transplant replaces every Neuron in the Network with a copy of the corresponding Neuron in
// source, so that both give the same outputs. The two Networks must have the same number of
// layers, with the same width at each position; if they don't, type StructureMismatchError is
// returned and the Network is left unchanged.
//
// The LearningRate of the Network is not changed.
func (net *Network) Transplant(source *Network) error {
	if source == nil {
		return NilArgError{"source Network"}
	} else if len(net.layers) != len(source.layers) {
		return StructureMismatchError{-1, len(net.layers), len(source.layers)}
	}

	for l := range net.layers {
		if net.layers[l].width != source.layers[l].width {
			return StructureMismatchError{l, net.layers[l].width, source.layers[l].width}
		}
	}

	for l := 1; l < len(net.layers); l++ {
		for i, n := range source.layers[l].neurons {
			cp := n.clone()
			if err := cp.bind(net, nil); err != nil {
				// the shapes were already checked
				panic(err)
			}

			net.layers[l].neurons[i] = cp
		}
	}

	return nil
}
