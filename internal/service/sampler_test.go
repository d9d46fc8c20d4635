package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathSampler_SeededIsReproducible(t *testing.T) {
	a, err := NewMathSamplerWithSeed(1, 2).Sample(DefaultPool(), 64)
	require.NoError(t, err)
	b, err := NewMathSamplerWithSeed(1, 2).Sample(DefaultPool(), 64)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewMathSamplerWithSeed(3, 4).Sample(DefaultPool(), 64)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestMathSampler_DoesNotReseedBetweenCalls(t *testing.T) {
	s := NewMathSamplerWithSeed(7, 7)
	first, err := s.Sample(DefaultPool(), 32)
	require.NoError(t, err)
	second, err := s.Sample(DefaultPool(), 32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMathSampler_CoversPool(t *testing.T) {
	pool, err := NewPool("xyz")
	require.NoError(t, err)

	out, err := NewMathSamplerWithSeed(42, 42).Sample(pool, 3000)
	require.NoError(t, err)
	for _, r := range "xyz" {
		assert.Contains(t, out, string(r))
	}
}

func TestMathSampler_EmptyPool(t *testing.T) {
	_, err := NewMathSampler().Sample(Pool{}, 3)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNanoidSampler(t *testing.T) {
	out, err := NanoidSampler{}.Sample(DefaultPool(), 256)
	require.NoError(t, err)
	assert.Len(t, out, 256)
	for _, r := range out {
		assert.True(t, DefaultPool().Contains(r), "unexpected character: %c", r)
	}
}

func TestNanoidSampler_EmptyPool(t *testing.T) {
	_, err := NanoidSampler{}.Sample(Pool{}, 3)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		kind    string
		want    Sampler
		wantErr bool
	}{
		{"", &MathSampler{}, false},
		{"math", &MathSampler{}, false},
		{" MATH ", &MathSampler{}, false},
		{"crypto", NanoidSampler{}, false},
		{"quantum", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := NewSampler(tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown randomness source")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}
