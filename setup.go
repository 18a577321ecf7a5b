package neuralnet

import (
	"github.com/pkg/errors"
)

// New creates a Network with inputSize inputs, hiddenLayers layers of hiddenSize Neurons each, and
// outputSize outputs. Every weight is drawn from init; every bias starts at zero.
//
// hiddenLayers may be zero, in which case hiddenSize is ignored and the output layer is
// connected directly to the inputs.
func New(inputSize, hiddenLayers, hiddenSize, outputSize int, init Initializer) (*Network, error) {
	if init == nil {
		return nil, NilArgError{"Initializer"}
	} else if hiddenLayers < 0 {
		return nil, ErrNegativeLayers
	} else if inputSize < 1 || outputSize < 1 || (hiddenLayers > 0 && hiddenSize < 1) {
		return nil, ErrNonPositiveWidth
	}

	net := newNetwork(inputSize)

	for h := 1; h <= hiddenLayers+1; h++ {
		size := hiddenSize
		if h == hiddenLayers+1 {
			size = outputSize
		}

		ns := make([]*Neuron, size)
		for i := range ns {
			ns[i] = NewNeuron(h, nil, 0)
		}

		net.layers = append(net.layers, layer{size, ns})
	}

	if err := net.bindAll(init); err != nil {
		return nil, err
	}

	return net, nil
}

// FromNeurons assembles a Network from already-made Neurons. Each argument after inputSize is
// one layer, in order from the first hidden layer to the output layer. The layer index of each
// Neuron is set from its position.
//
// Neurons without weights are rejected; all others must have exactly as many weights as the
// layer before them has values. A Neuron that already belongs to a Network, or that is given more
// than once, is rejected with ErrNeuronOwned. Nothing is changed unless the Network is made; after
// that, the Neurons are owned by it.
func FromNeurons(inputSize int, layers ...[]*Neuron) (*Network, error) {
	if inputSize < 1 {
		return nil, ErrNonPositiveWidth
	} else if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	seen := make(map[*Neuron]bool)
	width := inputSize
	for i, ns := range layers {
		if len(ns) == 0 {
			return nil, errors.Wrapf(ErrEmptyLayer, "Can't make network, layer %d", i+1)
		}

		for j, n := range ns {
			if n == nil {
				return nil, NilArgError{"Neuron"}
			} else if n.host != nil || seen[n] {
				return nil, errors.Wrapf(ErrNeuronOwned, "Can't make network, neuron %d of layer %d", j, i+1)
			} else if n.weights == nil {
				return nil, errors.Wrapf(NilArgError{"Initializer"}, "Can't make network, neuron %d of layer %d has no weights", j, i+1)
			} else if len(n.weights) != width {
				return nil, errors.Wrapf(SizeMismatchError{width, len(n.weights), "neuron weights"},
					"Can't make network, neuron %d of layer %d", j, i+1)
			}

			seen[n] = true
		}

		width = len(ns)
	}

	net := newNetwork(inputSize)
	for i, ns := range layers {
		own := make([]*Neuron, len(ns))
		copy(own, ns)
		for _, n := range own {
			n.layerIndex = i + 1
		}

		net.layers = append(net.layers, layer{len(own), own})
	}

	if err := net.bindAll(nil); err != nil {
		// everything bindAll checks was checked above
		panic(err)
	}

	return net, nil
}

func newNetwork(inputSize int) *Network {
	net := new(Network)
	net.LearningRate = DefaultLearningRate
	net.layers = []layer{{width: inputSize}}
	return net
}

// bindAll binds every Neuron in the Network, in order. init may be nil if every Neuron already
// has weights.
func (net *Network) bindAll(init Initializer) error {
	for l := 1; l < len(net.layers); l++ {
		for i, n := range net.layers[l].neurons {
			if err := n.bind(net, init); err != nil {
				return errors.Wrapf(err, "Can't bind neuron %d of layer %d", i, l)
			}
		}
	}

	return nil
}
