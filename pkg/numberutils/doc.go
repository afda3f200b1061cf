// Package numberutils provides small generic helpers for parity checks and
// summation over Go's built-in numeric types.
//
// All functions are pure: they read only their arguments, never mutate the
// input slice and keep no state between calls, so they are safe for
// concurrent use.
//
// # Integers
//
// IsEven and IsOdd are defined for every integer type and use Go's remainder
// operator. The remainder keeps the sign of the dividend (-3 % 2 == -1), which
// is still non-zero, so IsOdd is the exact complement of IsEven for negative
// values too.
//
//	numberutils.IsEven(4)   // true
//	numberutils.IsOdd(-7)   // true
//
// # Floating point
//
// Parity of non-integer values is handled by IsEvenFloat and IsOddFloat,
// which rely on math.Mod:
//
//	numberutils.IsEvenFloat(4.0) // true
//	numberutils.IsEvenFloat(2.5) // false
//	numberutils.IsOddFloat(2.5)  // true
//
// NaN and infinities are never even and always odd, because math.Mod returns
// NaN for them and NaN compares unequal to zero.
//
// # Summation
//
// Sum folds a slice from left to right starting at zero. An empty or nil slice
// sums to zero. Integer overflow wraps around as usual in Go.
//
//	numberutils.Sum([]int{1, 2, 3, 4})       // 10
//	numberutils.Sum([]float64{0.5, 0.25})    // 0.75
package numberutils
