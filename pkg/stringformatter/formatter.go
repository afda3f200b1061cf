package stringformatter

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Capitalize returns s with its first character converted to upper case.
// The rest of the string is returned unchanged. An empty string, or a string
// starting with an invalid UTF-8 byte, is returned as is.
func Capitalize(s string, opts ...Option) string {
	if s == "" {
		return s
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	var upper string
	if cfg.hasLang {
		// A Caser keeps internal state, so it is created per call.
		upper = cases.Upper(cfg.lang).String(s[:size])
	} else {
		upper = string(unicode.ToUpper(r))
	}

	if upper == s[:size] {
		return s
	}
	return upper + s[size:]
}

// Reverse returns the runes of s in reverse order.
// Invalid UTF-8 bytes are moved as single units, so Reverse(Reverse(s)) == s
// holds for every string.
func Reverse(s string) string {
	if len(s) < 2 {
		return s
	}

	buf := make([]byte, len(s))
	end := len(buf)
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		end -= size
		copy(buf[end:], s[i:i+size])
		i += size
	}

	return string(buf)
}

// CountWords returns the number of non-empty tokens in s separated by runs
// of whitespace.
func CountWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
