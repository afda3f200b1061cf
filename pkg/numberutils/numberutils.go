package numberutils

import "math"

// Integer represents all signed and unsigned integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Number represents any numeric type that supports addition.
type Number interface {
	Integer | Float
}

// IsEven reports whether n is exactly divisible by 2.
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by 2.
func IsOdd[T Integer](n T) bool {
	return n%2 != 0
}

// IsEvenFloat reports whether math.Mod(n, 2) is zero.
// Non-integer values, NaN and infinities are not even.
func IsEvenFloat[T Float](n T) bool {
	return math.Mod(float64(n), 2) == 0
}

// IsOddFloat is the complement of IsEvenFloat.
// Non-integer values, NaN and infinities are reported as odd.
func IsOddFloat[T Float](n T) bool {
	return math.Mod(float64(n), 2) != 0
}

// Sum returns the total of all values, accumulated in slice order.
// It returns zero for an empty slice.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
