package utilkit

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/utilkit/pkg/numberutils"
	"github.com/dmitrymomot/utilkit/pkg/stringformatter"
)

type (
	// Integer represents all signed and unsigned integer types.
	Integer = numberutils.Integer
	// Float represents floating-point numeric types.
	Float = numberutils.Float
	// Number represents any numeric type accepted by Sum.
	Number = numberutils.Number
	// CapitalizeOption configures Capitalize.
	CapitalizeOption = stringformatter.Option
)

// IsEven reports whether n is exactly divisible by 2.
func IsEven[T Integer](n T) bool { return numberutils.IsEven(n) }

// IsOdd reports whether n is not divisible by 2.
func IsOdd[T Integer](n T) bool { return numberutils.IsOdd(n) }

// IsEvenFloat reports whether a floating-point value is an even whole number.
func IsEvenFloat[T Float](n T) bool { return numberutils.IsEvenFloat(n) }

// IsOddFloat is the complement of IsEvenFloat.
func IsOddFloat[T Float](n T) bool { return numberutils.IsOddFloat(n) }

// Sum returns the total of all values, or zero for an empty slice.
func Sum[T Number](values []T) T { return numberutils.Sum(values) }

// Capitalize upper-cases the first character of s.
func Capitalize(s string, opts ...CapitalizeOption) string {
	return stringformatter.Capitalize(s, opts...)
}

// WithLanguage selects language-specific case rules for Capitalize.
func WithLanguage(tag language.Tag) CapitalizeOption {
	return stringformatter.WithLanguage(tag)
}

// Reverse returns the runes of s in reverse order.
func Reverse(s string) string { return stringformatter.Reverse(s) }

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int { return stringformatter.CountWords(s) }
