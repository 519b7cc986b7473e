package quantum

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by the simulations.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	NormFloat64() float64
	Intn(n int) int
}

// NewRand returns a source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Seeder hands out seeds for successive runs. A zero base seed means
// "seed from the clock" so that repeated runs differ.
type Seeder struct {
	base int64
	next int64
}

func NewSeeder(base int64) *Seeder {
	return &Seeder{base: base}
}

// Seed returns the seed for the next run. With a fixed base every call
// returns the base, so a configured seed reproduces each simulation.
func (s *Seeder) Seed() int64 {
	if s.base != 0 {
		return s.base
	}
	s.next++
	return time.Now().UnixNano() + s.next
}
