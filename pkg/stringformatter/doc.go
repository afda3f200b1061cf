// Package stringformatter provides pure text transformations over single
// strings: capitalizing the first character, reversing and counting words.
//
// # Text units
//
// Every function works on Unicode scalar values (runes) decoded from UTF-8.
// Bytes that are not valid UTF-8 are treated as single, opaque units and are
// never rewritten, so no information is lost for arbitrary input.
//
// Grapheme clusters that consist of several runes (a letter followed by a
// combining accent, emoji joined with ZWJ, regional indicator flags) are not
// kept together: Reverse moves their runes independently. This is a known
// limitation of rune-level processing.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/stringformatter"
//
//	stringformatter.Capitalize("hello")               // "Hello"
//	stringformatter.Reverse("hello")                  // "olleh"
//	stringformatter.CountWords(" hello   world \n")   // 2
//
// Capitalize uses unicode.ToUpper by default. Language-specific rules from
// golang.org/x/text/cases can be selected with WithLanguage:
//
//	stringformatter.Capitalize("istanbul", stringformatter.WithLanguage(language.Turkish))
//	// "İstanbul"
//
// # Whitespace
//
// CountWords splits on maximal runs of characters for which unicode.IsSpace
// reports true. Leading, trailing and repeated whitespace never produce empty
// words.
//
// All functions are safe for concurrent use.
package stringformatter
