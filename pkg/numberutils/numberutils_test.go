package numberutils_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/numberutils"
)

func TestIsEven(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected bool
	}{
		{name: "zero is even", input: 0, expected: true},
		{name: "two is even", input: 2, expected: true},
		{name: "one is not even", input: 1, expected: false},
		{name: "negative even", input: -4, expected: true},
		{name: "negative odd", input: -3, expected: false},
		{name: "large even", input: math.MaxInt - 1, expected: true},
		{name: "min int is even", input: math.MinInt, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numberutils.IsEven(tt.input))
		})
	}
}

func TestIsOdd(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected bool
	}{
		{name: "ninety nine is odd", input: 99, expected: true},
		{name: "one is odd", input: 1, expected: true},
		{name: "zero is not odd", input: 0, expected: false},
		{name: "negative odd", input: -7, expected: true},
		{name: "negative one is odd", input: -1, expected: true},
		{name: "negative even", input: -10, expected: false},
		{name: "max int is odd", input: math.MaxInt, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numberutils.IsOdd(tt.input))
		})
	}
}

func TestParityComplement(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		for n := -1000; n <= 1000; n++ {
			assert.NotEqual(t, numberutils.IsEven(n), numberutils.IsOdd(n), "n=%d", n)
		}
	})

	t.Run("int8 full range", func(t *testing.T) {
		for i := math.MinInt8; i <= math.MaxInt8; i++ {
			n := int8(i)
			assert.NotEqual(t, numberutils.IsEven(n), numberutils.IsOdd(n), "n=%d", n)
		}
	})

	t.Run("uint64 boundaries", func(t *testing.T) {
		for _, n := range []uint64{0, 1, math.MaxUint64 - 1, math.MaxUint64} {
			assert.NotEqual(t, numberutils.IsEven(n), numberutils.IsOdd(n), "n=%d", n)
		}
		assert.True(t, numberutils.IsOdd(uint64(math.MaxUint64)))
	})

	t.Run("named integer type", func(t *testing.T) {
		type port uint16
		assert.True(t, numberutils.IsEven(port(8080)))
		assert.True(t, numberutils.IsOdd(port(443)))
	})
}

func TestIsEvenFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{name: "whole even", input: 4, expected: true},
		{name: "whole odd", input: 3, expected: false},
		{name: "zero", input: 0, expected: true},
		{name: "negative zero", input: math.Copysign(0, -1), expected: true},
		{name: "negative whole even", input: -8, expected: true},
		{name: "fraction", input: 2.5, expected: false},
		{name: "NaN", input: math.NaN(), expected: false},
		{name: "positive infinity", input: math.Inf(1), expected: false},
		{name: "negative infinity", input: math.Inf(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numberutils.IsEvenFloat(tt.input))
			assert.Equal(t, !tt.expected, numberutils.IsOddFloat(tt.input))
		})
	}
}

func TestIsOddFloat_Float32(t *testing.T) {
	assert.True(t, numberutils.IsOddFloat(float32(7)))
	assert.True(t, numberutils.IsOddFloat(float32(0.5)))
	assert.False(t, numberutils.IsOddFloat(float32(-2)))
}

func TestSum(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		assert.Equal(t, 10, numberutils.Sum([]int{1, 2, 3, 4}))
	})

	t.Run("empty slice", func(t *testing.T) {
		assert.Equal(t, 0, numberutils.Sum([]int{}))
	})

	t.Run("nil slice", func(t *testing.T) {
		assert.Equal(t, 0.0, numberutils.Sum[float64](nil))
	})

	t.Run("negative values", func(t *testing.T) {
		assert.Equal(t, int64(-5), numberutils.Sum([]int64{-10, 3, 2}))
	})

	t.Run("floats", func(t *testing.T) {
		assert.InDelta(t, 0.75, numberutils.Sum([]float64{0.5, 0.25}), 1e-12)
	})

	t.Run("unsigned", func(t *testing.T) {
		assert.Equal(t, uint(6), numberutils.Sum([]uint{1, 2, 3}))
	})

	t.Run("overflow wraps", func(t *testing.T) {
		assert.Equal(t, int8(math.MinInt8), numberutils.Sum([]int8{math.MaxInt8, 1}))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := []int{5, 1, 4}
		original := slices.Clone(input)
		_ = numberutils.Sum(input)
		assert.Equal(t, original, input)
	})
}

func TestSum_OrderIndependent(t *testing.T) {
	t.Run("ints are exact", func(t *testing.T) {
		values := []int{7, -3, 42, 0, 19, -100, 8}
		reversed := slices.Clone(values)
		slices.Reverse(reversed)
		assert.Equal(t, numberutils.Sum(values), numberutils.Sum(reversed))
	})

	t.Run("floats within tolerance", func(t *testing.T) {
		values := []float64{0.1, 0.2, 0.3, 1e10, -1e10, 3.75}
		reversed := slices.Clone(values)
		slices.Reverse(reversed)
		assert.InDelta(t, numberutils.Sum(values), numberutils.Sum(reversed), 1e-5)
	})
}
