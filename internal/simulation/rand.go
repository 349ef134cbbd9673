package simulation

import (
	"math/rand"
	"time"
)

// Rand is the randomness source behind the fulfillment-variance policy.
// It is injected so the policy stays deterministic under test.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a time-seeded source for production use.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
