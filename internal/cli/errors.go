package cli

import "errors"

var (
	// ErrInvalidNumber is returned when a sum argument is not a number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrSumOverflow is returned when finite arguments add up to an infinite float.
	ErrSumOverflow = errors.New("sum overflows float64")

	// ErrInvalidInteger is returned when a parity argument is not an integer.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrUnknownOutputFormat is returned for unsupported --output values.
	ErrUnknownOutputFormat = errors.New("unknown output format")

	// ErrMissingArgument is returned when a command needs at least one argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidLanguage is returned when --lang is not a valid BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")
)
