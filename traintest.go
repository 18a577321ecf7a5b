package neuralnet

import (
	"github.com/pkg/errors"
)

// Datum is a simple wrapper for a single training or testing sample
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of the
	// network's inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Outputs) == net.OutputSize()
}

// Train calls Backpropagate on every Datum, in order, repeating the whole set the given number of
// times. Every Datum is checked before any training is done; if one does not fit the Network,
// type SizeMismatchError is returned and the Network is not changed.
func (net *Network) Train(data []Datum, iterations int) error {
	if err := net.checkData(data); err != nil {
		return err
	}

	for it := 0; it < iterations; it++ {
		for i := range data {
			if _, err := net.Backpropagate(data[i].Inputs, data[i].Outputs); err != nil {
				return errors.Wrapf(err, "Training failed at iteration %d, datum %d", it, i)
			}
		}
	}

	return nil
}

// Test evaluates the Network on every Datum without training it. It returns the average cost
// given by cf and the percentage (0 to 100) of outputs for which isCorrect returned true. If
// isCorrect is nil, percent is always 0.
func (net *Network) Test(data []Datum, cf CostFunction, isCorrect func(outs, targets []float64) bool) (avgCost, percent float64, err error) {
	if cf == nil {
		return 0, 0, NilArgError{"CostFunction"}
	} else if len(data) == 0 {
		return 0, 0, nil
	} else if err = net.checkData(data); err != nil {
		return 0, 0, err
	}

	var correct int
	for i := range data {
		outs, err := net.Evaluate(data[i].Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Testing failed at datum %d", i)
		}

		avgCost += cf.Cost(outs, data[i].Outputs)
		if isCorrect != nil && isCorrect(outs, data[i].Outputs) {
			correct++
		}
	}

	avgCost /= float64(len(data))
	percent = 100 * float64(correct) / float64(len(data))
	return avgCost, percent, nil
}

func (net *Network) checkData(data []Datum) error {
	for i, d := range data {
		if d.Fits(net) {
			continue
		}

		if len(d.Inputs) != net.InputSize() {
			return errors.Wrapf(SizeMismatchError{net.InputSize(), len(d.Inputs), "inputs"}, "Datum %d doesn't fit", i)
		}

		return errors.Wrapf(SizeMismatchError{net.OutputSize(), len(d.Outputs), "outputs"}, "Datum %d doesn't fit", i)
	}

	return nil
}
