package neuralnet

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNonPositiveWidth = Error{"Layer width must be positive"}
	ErrNegativeLayers   = Error{"Number of hidden layers can't be negative"}
	ErrNoLayers         = Error{"Network must have at least one layer of neurons"}
	ErrEmptyLayer       = Error{"Layer of neurons is empty"}
	ErrBadRecord        = Error{"Malformed layer record"}
	ErrNeuronOwned      = Error{"Neuron already belongs to a network"}
	ErrTrailingData     = Error{"Unexpected data after network"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError is returned when a slice given to the Network (or stored in a Neuron) does
// not have the length it is required to have.
type SizeMismatchError struct {
	Expected, Got int

	// what had the wrong size, e.g. "inputs" or "targets"
	Of string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.Of, err.Expected, err.Got)
}

// StructureMismatchError is returned by Transplant when two Networks do not have the same shape.
// Layer is -1 if the number of layers differs.
type StructureMismatchError struct {
	Layer       int
	Dst, Source int
}

func (err StructureMismatchError) Error() string {
	if err.Layer < 0 {
		return fmt.Sprintf("Structure mismatch: %d layers vs %d in source", err.Dst, err.Source)
	}

	return fmt.Sprintf("Structure mismatch at layer %d: width %d vs %d in source", err.Layer, err.Dst, err.Source)
}
