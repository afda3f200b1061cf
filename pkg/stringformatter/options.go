package stringformatter

import "golang.org/x/text/language"

// Option configures Capitalize.
type Option func(*config)

type config struct {
	lang    language.Tag
	hasLang bool
}

// WithLanguage maps the first character using the case rules of the given
// language instead of the language-independent unicode.ToUpper.
// The undetermined tag (language.Und) keeps the default behavior.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		if tag == language.Und {
			return
		}
		c.lang = tag
		c.hasLang = true
	}
}
