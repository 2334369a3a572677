package montecarlo

import "math/rand"

// Source is the random capability a trial consumes. Injecting it keeps the
// simulation logic testable against a deterministic or fixed-sequence
// source.
type Source interface {
	// Uniform draws from [lo, hi).
	Uniform(lo, hi float64) float64
	// Normal draws from a normal distribution with the given mean and
	// standard deviation.
	Normal(mean, std float64) float64
	// Float64 draws from [0, 1).
	Float64() float64
}

// NewSource returns a seeded source backed by math/rand. Monte Carlo draws
// do not need crypto-grade randomness.
//
//nolint:gosec // G404: simulation randomness, not security-sensitive
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

type randSource struct {
	r *rand.Rand
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

func (s *randSource) Normal(mean, std float64) float64 {
	return mean + s.r.NormFloat64()*std
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}
