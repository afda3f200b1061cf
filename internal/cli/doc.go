// Package cli implements the utilkit command tree on top of
// github.com/spf13/cobra.
//
// Every subcommand maps to one function of the utilkit package:
//
//	utilkit is-even 4 7          # true, false
//	utilkit is-odd -- -3         # true ("--" lets negative numbers through)
//	utilkit sum 1 2 3 4          # 10
//	utilkit capitalize hello     # Hello
//	utilkit reverse hello        # olleh
//	utilkit count-words "a  b c" # 3
//
// Results go to stdout as plain text, JSON or YAML (--output or
// UTILKIT_OUTPUT). Logs go to stderr through pkg/logger. Configuration is read
// from the environment by cmd/utilkit and passed in as a Config.
package cli
