package service

import (
	"errors"
	"fmt"
)

// SoftCeiling is the default length above which callers warn that a
// password is unusually long. The generator itself never rejects it.
const SoftCeiling = 128

// MaxLength bounds a single password so one request cannot exhaust memory.
const MaxLength = 1 << 24

// ErrLengthTooLarge is returned for lengths above MaxLength. It is not a
// validation error: the request is well formed but cannot be served.
var ErrLengthTooLarge = errors.New("requested length exceeds generator limit")

// ValidationError reports a length request that cannot produce a password.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PasswordGenerator builds random passwords from a fixed pool.
type PasswordGenerator struct {
	pool    Pool
	sampler Sampler
}

// NewPasswordGenerator creates a generator. A nil sampler selects a
// freshly seeded MathSampler.
func NewPasswordGenerator(pool Pool, sampler Sampler) (*PasswordGenerator, error) {
	if pool.IsEmpty() {
		return nil, fmt.Errorf("invalid generator configuration: %w", ErrEmptyPool)
	}
	if sampler == nil {
		sampler = NewMathSampler()
	}
	return &PasswordGenerator{pool: pool, sampler: sampler}, nil
}

// NewDefaultPasswordGenerator uses DefaultPool and a MathSampler.
func NewDefaultPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{pool: DefaultPool(), sampler: NewMathSampler()}
}

// Pool returns the characters the generator draws from.
func (g *PasswordGenerator) Pool() Pool {
	return g.pool
}

// Generate returns a password of exactly length characters.
func (g *PasswordGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", &ValidationError{Reason: "length must be positive"}
	}
	if length > MaxLength {
		return "", fmt.Errorf("cannot generate %d characters (limit %d): %w", length, MaxLength, ErrLengthTooLarge)
	}

	password, err := g.sampler.Sample(g.pool, length)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	if len(password) != length {
		return "", fmt.Errorf("sampler returned %d characters, want %d", len(password), length)
	}

	return password, nil
}
