package initializers

import (
	"math/rand"
)

const (
	defaultLower float64 = -1
	defaultUpper float64 = 1
)

type uniform struct {
	rng *uniformRNG
}

// Uniform returns an Initializer that draws every weight from a uniform random sample within a
// range, by default [-1, 1). The range can be set by Range. Values are taken from src, which is
// not safe to share with anything else that may run concurrently.
//
// The result of Uniform is a type that implements neuralnet.Initializer.
func Uniform(src rand.Source) *uniform {
	return &uniform{UniformRNG(src)}
}

// Seeded is a shorthand for Uniform(rand.NewSource(seed)). Two Networks made with the same seed
// and shape start with the same weights.
func Seeded(seed int64) *uniform {
	return Uniform(rand.NewSource(seed))
}

// Range sets the Range of a Uniform Initializer, returning the same Initializer
func (u *uniform) Range(lower, upper float64) *uniform {
	u.rng.Bounds(lower, upper)
	return u
}

// Set is the implementation of neuralnet.Initializer
func (u *uniform) Set(ws []float64) {
	for i := range ws {
		ws[i] = u.rng.Gen()
	}
}
