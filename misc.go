package neuralnet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CorrectRound returns whether every output rounds to its target. Outputs are in (0, 1), so this
// is the natural check for networks trained on 0/1 targets.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// CorrectHighest returns whether the largest output is at the same index as the largest target.
// Ties go to the lowest index.
func CorrectHighest(outs, targets []float64) bool {
	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}
