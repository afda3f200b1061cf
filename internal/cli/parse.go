package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

func parseIntegers(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		// ParseFloat accepts "inf" and "NaN"; JSON cannot encode them.
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func requireArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s needs at least one value", ErrMissingArgument, cmd.Name())
	}
	return nil
}
