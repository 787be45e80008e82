package selection

import (
	"math/rand/v2"
)

// Source yields pseudo-random numbers in [0, 1).
type Source interface {
	Float64() float64
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// LCG is a linear congruential generator with the (9301, 49297, 233280)
// parameters.
type LCG struct {
	state int64
}

// NewLCG returns an LCG seeded with seed.
func NewLCG(seed int64) *LCG {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &LCG{state: s}
}

// Float64 advances the generator and returns state/233280.
func (g *LCG) Float64() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / lcgModulus
}

// NewRandomSource returns a non-deterministic Source backed by a freshly
// seeded PCG generator.
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
