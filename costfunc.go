package neuralnet

// CostFunction measures how far a set of outputs is from its targets. It is only used for
// reporting (see Test): training always follows the gradient of half the squared error.
//
// Implementations can be found in the subpackage "costfuncs".
type CostFunction interface {
	// Cost returns the total cost of the outputs. It can assume that the lengths are equal and
	// that there are no NaNs or Infs.
	Cost(outs, targets []float64) float64
}
