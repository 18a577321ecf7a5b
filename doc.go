// Package neuralnet provides a small framework for fully-connected feed-forward neural networks.
// It is intentionally minimal: every Neuron owns its weights and bias, every Network owns its
// Neurons, and training is plain online gradient descent.
//
// Creating Networks
//
// A Network is made of an input placeholder (a width, without any parameters) followed by one or
// more layers of Neurons. The standard way to create one is:
//
//		net, err := neuralnet.New(inputSize, hiddenLayers, hiddenSize, outputSize, initializers.Seeded(1))
//		if err != nil {
//			return err
//		}
//
// The last argument is an Initializer, used to draw the starting weights of every Neuron. The
// subpackage "initializers" provides uniform, normal and variance-scaled ones. Each takes an
// explicit random source, so two Networks never share random state by accident.
//
// Networks with hand-picked weights can be assembled with FromNeurons:
//
//		net, err := neuralnet.FromNeurons(2,
//			[]*neuralnet.Neuron{
//				neuralnet.NewNeuron(1, []float64{0.5, -0.5}, 0),
//				neuralnet.NewNeuron(1, []float64{0.2, 0.3}, 0),
//			},
//			[]*neuralnet.Neuron{
//				neuralnet.NewNeuron(2, []float64{1, 1}, 0),
//			},
//		)
//
// Every Neuron squashes its weighted sum with Response, atan(x)/π + 1/2, so all outputs of a
// Network lie in (0, 1).
//
// Training and Testing
//
// Training is done one sample at a time:
//
//		outs, err := net.Backpropagate(inputs, targets)
//
// The returned outputs are the ones computed before the weights were adjusted. The step size is
// the exported field LearningRate, which defaults to DefaultLearningRate. For repeated passes over
// a small dataset, Train and Test wrap Backpropagate and Evaluate with the Datum type. Test takes
// a CostFunction; some are provided in the subpackage "costfuncs".
//
// Transforming Networks
//
// Copy gives an independent deep copy. Reverse builds a Network with the input and output widths
// swapped by transposing every weight matrix; it is a structural tool, not an inverse, and the
// result will need retraining. Transplant moves the parameters of one Network into another of
// identical shape.
//
// Saving and Loading
//
// Networks are stored as a single JSON document:
//
//		func (net *Network) Save(path string) error
//		func Load(path string) (*Network, error)
//
// Encode and Decode do the same with an io.Writer or io.Reader.
package neuralnet
