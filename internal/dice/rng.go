package dice

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource feeds every weighted draw. Float64 must return a value in [0, 1).
type RandomSource interface {
	Float64() float64
}

// cryptoRNG is the default source when a die is built without one.
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// top 53 bits => [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultRNG returns the source used by dice that were not given one.
func DefaultRNG() RandomSource { return cryptoRNG{} }

// seededRNG is a reproducible PCG stream.
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source, stream 0 of the given seed.
func NewSeededRNG(seed uint64) RandomSource {
	return NewSeededStream(seed, 0)
}

// NewSeededStream returns a reproducible source for one of several independent
// streams sharing a seed. Scenario builds give every die its own stream.
func NewSeededStream(seed, stream uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, stream))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
