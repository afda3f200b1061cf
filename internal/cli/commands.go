package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/utilkit"
	"github.com/dmitrymomot/utilkit/pkg/logger"
)

func isEven(n int64) bool { return utilkit.IsEven(n) }
func isOdd(n int64) bool  { return utilkit.IsOdd(n) }

func reverse(s string) (any, string) {
	r := utilkit.Reverse(s)
	return r, r
}

func countWords(s string) (any, string) {
	n := utilkit.CountWords(s)
	return n, strconv.Itoa(n)
}

func (a *app) parityCommand(name, short string, check func(int64) bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <int>...",
		Short: short,
		Args:  requireArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			values, err := parseIntegers(args)
			if err != nil {
				return err
			}

			results := make([]bool, len(values))
			lines := make([]string, len(values))
			for i, v := range values {
				results[i] = check(v)
				lines[i] = strconv.FormatBool(results[i])
			}

			return a.emit(withCommand(cmd), start, len(args), Result{
				Command: name,
				Input:   values,
				Result:  results,
				text:    strings.Join(lines, "\n"),
			})
		},
	}
}

func (a *app) sumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [number]...",
		Short: "Add all numbers; prints 0 when none are given",
		Long: `Add all numbers in argument order.

Integer arithmetic (int64) is used when every argument is an integer,
floating point otherwise. Integer sums outside the int64 range wrap around
(9223372036854775807 + 1 prints -9223372036854775808). Infinite and NaN
values are rejected.

Place "--" before negative numbers: utilkit sum -- -1 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			input, total, text, err := sumArgs(args)
			if err != nil {
				return err
			}
			return a.emit(withCommand(cmd), start, len(args), Result{
				Command: "sum",
				Input:   input,
				Result:  total,
				text:    text,
			})
		},
	}
}

// sumArgs returns the parsed inputs, the total and its text rendering.
func sumArgs(args []string) (any, any, string, error) {
	if ints, err := parseIntegers(args); err == nil {
		total := utilkit.Sum(ints)
		return ints, total, strconv.FormatInt(total, 10), nil
	}

	floats, err := parseNumbers(args)
	if err != nil {
		return nil, nil, "", err
	}
	total := utilkit.Sum(floats)
	if math.IsInf(total, 0) {
		return nil, nil, "", ErrSumOverflow
	}
	return floats, total, strconv.FormatFloat(total, 'g', -1, 64), nil
}

func (a *app) capitalizeCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "capitalize [text]...",
		Short: "Upper-case the first character of the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			var opts []utilkit.CapitalizeOption
			if lang != "" {
				tag, err := language.Parse(lang)
				if err != nil {
					return fmt.Errorf("%w %q: %v", ErrInvalidLanguage, lang, err)
				}
				opts = append(opts, utilkit.WithLanguage(tag))
			}

			input := strings.Join(args, " ")
			out := utilkit.Capitalize(input, opts...)
			return a.emit(withCommand(cmd), start, len(args), Result{
				Command: "capitalize",
				Input:   input,
				Result:  out,
				text:    out,
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "BCP 47 language tag for case rules (e.g. tr, de)")
	return cmd
}

func (a *app) textCommand(name, short string, fn func(string) (any, string)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [text]...",
		Short: short,
		Long:  short + ".\n\nArguments are joined with a single space.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			input := strings.Join(args, " ")
			value, text := fn(input)
			return a.emit(withCommand(cmd), start, len(args), Result{
				Command: name,
				Input:   input,
				Result:  value,
				text:    text,
			})
		},
	}
}

func (a *app) emit(ctx context.Context, start time.Time, argc int, res Result) error {
	if err := writeResult(a.stdout, a.format, res); err != nil {
		return fmt.Errorf("write %s result: %w", a.format, err)
	}
	a.log.DebugContext(ctx, "command completed",
		logger.ArgCount(argc),
		logger.Duration(time.Since(start)),
	)
	return nil
}
