package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RNG is a seeded pseudo-random source. Two RNGs built from the same seed
// produce the same sequence.
type RNG struct {
	seed int64
	r    *rand.Rand
}

func NewRNG(seed int64) *RNG {
	// Non-cryptographic PRNG is intentional for reproducible layouts.
	// #nosec G404
	return &RNG{
		seed: seed,
		r:    rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

func (g *RNG) Seed() int64 {
	return g.seed
}

// Float64 returns a value in [0,1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

func (g *RNG) IntN(n int) int {
	return g.r.IntN(n)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
