// Package utilkit is the single entry point for a small set of pure helpers
// over numbers and strings.
//
// It re-exports the functions of two independent packages:
//
//   - pkg/numberutils: IsEven, IsOdd, IsEvenFloat, IsOddFloat and Sum.
//   - pkg/stringformatter: Capitalize, Reverse and CountWords.
//
// The functions here only forward to those packages. Import the leaf package
// directly when only one group is needed.
//
// Basic Usage:
//
//	utilkit.IsEven(2)                       // true
//	utilkit.IsOdd(99)                       // true
//	utilkit.Sum([]int{1, 2, 3, 4})          // 10
//	utilkit.Capitalize("hello")             // "Hello"
//	utilkit.Reverse("hello")                // "olleh"
//	utilkit.CountWords("hello   world")     // 2
//
// Every function is total over its Go argument types: there are no errors, no
// panics and no side effects. Strings are processed as Unicode scalar values;
// see pkg/stringformatter for the exact text rules.
//
// A command-line front end lives in cmd/utilkit.
package utilkit
