package service

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercase   = "abcdefghijklmnopqrstuvwxyz"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	defaultPoolChars = lowercase + uppercase + digits + punctuation
)

// ErrEmptyPool is returned when a generator is configured without characters to draw from.
var ErrEmptyPool = errors.New("character pool is empty")

// Pool is an ordered set of ASCII characters eligible for sampling.
type Pool struct {
	chars string
}

// DefaultPool returns letters, digits and ASCII punctuation.
func DefaultPool() Pool {
	return Pool{chars: defaultPoolChars}
}

// NewPool builds a pool from chars. Characters must be printable ASCII and
// appear at most once, otherwise sampling would not be uniform per symbol.
func NewPool(chars string) (Pool, error) {
	if chars == "" {
		return Pool{}, ErrEmptyPool
	}
	seen := make(map[byte]bool, len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c < 0x21 || c > 0x7e {
			return Pool{}, fmt.Errorf("character %q at position %d is not printable ASCII", c, i)
		}
		if seen[c] {
			return Pool{}, fmt.Errorf("duplicate character %q in pool", c)
		}
		seen[c] = true
	}
	return Pool{chars: chars}, nil
}

// Contains reports whether r is a member of the pool.
func (p Pool) Contains(r rune) bool {
	return strings.ContainsRune(p.chars, r)
}

// Len returns the number of characters in the pool.
func (p Pool) Len() int { return len(p.chars) }

// At returns the i-th character in pool order.
func (p Pool) At(i int) byte { return p.chars[i] }

// String returns the pool characters in order.
func (p Pool) String() string { return p.chars }

// IsEmpty reports whether the pool has no characters.
func (p Pool) IsEmpty() bool { return p.chars == "" }
