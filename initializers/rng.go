package initializers

import "math/rand"

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniformRNG struct {
	rand         *rand.Rand
	lower, upper float64
}

// UniformRNG returns an RNG that gives values uniformly spread between its bounds, which
// default to [-1, 1) and can be set by Bounds. Values are drawn from src.
func UniformRNG(src rand.Source) *uniformRNG {
	return &uniformRNG{rand.New(src), defaultLower, defaultUpper}
}

// Bounds sets the range of a UniformRNG, returning it.
func (u *uniformRNG) Bounds(lower, upper float64) *uniformRNG {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of RNG for UniformRNG. It returns a random number.
func (u *uniformRNG) Gen() float64 {
	return u.rand.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	rand *rand.Rand
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution, drawn from src. The
// center and standard deviation default to 0 and 1, and can be set by Mean and SD.
func Normal(src rand.Source) *normal {
	return &normal{rand.New(src), 0, 1}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return n.rand.NormFloat64()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within a truncated normal distribution. The
// distribution is truncated at 2 standard deviations. The center and standard deviation can be
// set in the same way as Normal, because Normal is embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by Trunc.
func TruncNormal(src rand.Source) *truncNormal {
	return &truncNormal{Normal(src), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will
// panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.rand.NormFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}
