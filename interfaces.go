package neuralnet

// Initializer sets the starting weights of a Neuron. Set is given the freshly allocated weight
// slice, whose length is the width of the previous layer, and should fill every value.
//
// Implementations can be found in the subpackage "initializers".
type Initializer interface {
	Set(ws []float64)
}
