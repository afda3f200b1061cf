package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how command results are written to stdout.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutputFormat, s)
	}
}

// Result is the structured record printed for json and yaml output.
type Result struct {
	Command string `json:"command" yaml:"command"`
	Input   any    `json:"input" yaml:"input"`
	Result  any    `json:"result" yaml:"result"`

	// text is the plain rendering used for text output.
	text string
}

func writeResult(w io.Writer, format Format, res Result) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, res.text)
		return err
	}
}
