package neuralnet

// InputSize returns the number of values expected as input to the Network.
func (net *Network) InputSize() int {
	return net.layers[0].width
}

// OutputSize returns the number of values the Network outputs.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].width
}

// NumLayers returns the number of layers in the Network, including the input placeholder. It is
// always at least 2.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Widths returns the width of every layer, starting with the inputs.
func (net *Network) Widths() []int {
	ws := make([]int, len(net.layers))
	for i := range net.layers {
		ws[i] = net.layers[i].width
	}

	return ws
}

// Neuron returns the n-th Neuron of the given layer. The input placeholder (layer 0) has no
// Neurons. Neuron will panic if either index is out of range.
func (net *Network) Neuron(layer, n int) *Neuron {
	if layer == 0 {
		panic("input layer has no neurons")
	}

	return net.layers[layer].neurons[n]
}

// Values returns a copy of the values of the given layer from the most recent evaluation, or nil
// if the Network has not been evaluated yet.
func (net *Network) Values(layer int) []float64 {
	if net.cache.values == nil {
		return nil
	}

	vs := make([]float64, len(net.cache.values[layer]))
	copy(vs, net.cache.values[layer])
	return vs
}
