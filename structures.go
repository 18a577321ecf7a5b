package neuralnet

// Network is an ordered set of layers: an input placeholder followed by one or more layers of
// Neurons, each fully connected to the layer before it.
type Network struct {
	// layers[0] only has a width; all others have at least one Neuron.
	layers []layer

	// LearningRate is the step size used by every subsequent call to Backpropagate.
	LearningRate float64

	// values from the latest evaluation. Not part of the Network's structure, never saved, and
	// not copied.
	cache scratch
}

// layer is a single layer of the Network. For the input placeholder, neurons is nil.
type layer struct {
	width   int
	neurons []*Neuron
}

// scratch holds the values of each layer from the most recent forward pass, reused between
// passes. values[0] is a copy of the inputs.
type scratch struct {
	values [][]float64
}

// DefaultLearningRate is the LearningRate given to new Networks.
const DefaultLearningRate float64 = 0.01
