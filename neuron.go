package neuralnet

import (
	"gonum.org/v1/gonum/floats"
)

// Neuron is a single unit in a layer of a Network. It owns its weights (one per value of the
// previous layer) and its bias, and remembers the results of the last pass through it.
type Neuron struct {
	weights []float64
	bias    float64

	// position of the containing layer within the Network; always >= 1
	layerIndex int

	// the Network the Neuron has been bound to. nil until bind() is called
	host *Network

	// the weighted sum before the activation function
	preActivation float64

	// Response(preActivation)
	output float64

	// δ: derivative of the cost w.r.t. preActivation. Only meaningful after Backpropagate
	delta float64
}

// NewNeuron returns a Neuron for the layer at layerIndex with the given weights and bias. The
// weights are used directly, not copied. If weights is nil, they will be drawn from the
// Network's Initializer once the Neuron is added to a Network.
func NewNeuron(layerIndex int, weights []float64, bias float64) *Neuron {
	return &Neuron{
		weights:    weights,
		bias:       bias,
		layerIndex: layerIndex,
	}
}

// Weights returns a copy of the Neuron's weights.
func (n *Neuron) Weights() []float64 {
	ws := make([]float64, len(n.weights))
	copy(ws, n.weights)
	return ws
}

// Bias returns the Neuron's bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// LayerIndex returns the index of the layer the Neuron is in.
func (n *Neuron) LayerIndex() int {
	return n.layerIndex
}

// PreActivation returns the weighted sum (plus bias) from the most recent evaluation.
func (n *Neuron) PreActivation() float64 {
	return n.preActivation
}

// Output returns the value of the Neuron from the most recent evaluation.
func (n *Neuron) Output() float64 {
	return n.output
}

// Delta returns the error signal from the most recent call to Backpropagate.
func (n *Neuron) Delta() float64 {
	return n.delta
}

// bind attaches the Neuron to its Network, drawing weights from init if there are none. Existing
// weights are never overwritten, but they must match the width of the previous layer.
func (n *Neuron) bind(net *Network, init Initializer) error {
	width := net.layers[n.layerIndex-1].width

	if n.weights == nil {
		if init == nil {
			return NilArgError{"Initializer"}
		}

		n.weights = make([]float64, width)
		init.Set(n.weights)
	} else if len(n.weights) != width {
		return SizeMismatchError{width, len(n.weights), "neuron weights"}
	}

	n.host = net
	return nil
}

// activate sets and returns the output of the Neuron, given the values of the previous layer.
//
// assumes len(prev) == len(n.weights)
func (n *Neuron) activate(prev []float64) float64 {
	n.preActivation = n.bias + floats.Dot(n.weights, prev)
	n.output = Response(n.preActivation)
	return n.output
}

// clone returns an unbound copy of the Neuron that shares no memory with it
func (n *Neuron) clone() *Neuron {
	ws := make([]float64, len(n.weights))
	copy(ws, n.weights)

	return &Neuron{
		weights:    ws,
		bias:       n.bias,
		layerIndex: n.layerIndex,
	}
}
