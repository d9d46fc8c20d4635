package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

// MathSampler draws characters from a PCG generator. It is not safe for
// concurrent use.
type MathSampler struct {
	rng *rand.Rand
}

// NewMathSampler seeds a PCG generator from the runtime's entropy-seeded
// global source. Seeding happens once; calls never reseed.
func NewMathSampler() *MathSampler {
	return NewMathSamplerWithSeed(rand.Uint64(), rand.Uint64())
}

// NewMathSamplerWithSeed returns a reproducible sampler.
func NewMathSamplerWithSeed(seed1, seed2 uint64) *MathSampler {
	return &MathSampler{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Sample implements Sampler.
func (s *MathSampler) Sample(pool Pool, n int) (string, error) {
	if pool.IsEmpty() {
		return "", ErrEmptyPool
	}
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(pool.At(s.rng.IntN(pool.Len())))
	}
	return sb.String(), nil
}

// NanoidSampler draws characters with go-nanoid, which reads from crypto/rand.
type NanoidSampler struct{}

// Sample implements Sampler.
func (NanoidSampler) Sample(pool Pool, n int) (string, error) {
	if pool.IsEmpty() {
		return "", ErrEmptyPool
	}
	s, err := gonanoid.Generate(pool.String(), n)
	if err != nil {
		return "", fmt.Errorf("nanoid generation failed: %w", err)
	}
	return s, nil
}

// NewSampler returns the sampler registered under kind. An empty kind
// selects SourceMath.
func NewSampler(kind string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", SourceMath:
		return NewMathSampler(), nil
	case SourceCrypto:
		return NanoidSampler{}, nil
	default:
		return nil, fmt.Errorf("unknown randomness source %q (want %q or %q)", kind, SourceMath, SourceCrypto)
	}
}
