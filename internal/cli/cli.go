package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/utilkit/pkg/environment"
	"github.com/dmitrymomot/utilkit/pkg/logger"
)

// Config holds the settings of the command-line tool.
type Config struct {
	Env      string `env:"UTILKIT_ENV" envDefault:"development"`
	LogLevel string `env:"UTILKIT_LOG_LEVEL" envDefault:"info"`
	Output   string `env:"UTILKIT_OUTPUT" envDefault:"text"`
}

type commandKey struct{}

type app struct {
	cfg    Config
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
	format Format
}

// Execute runs the command tree with the given arguments (without the
// program name). Failures are logged to stderr and returned.
func Execute(ctx context.Context, cfg Config, args []string, stdout, stderr io.Writer) error {
	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}
	// An invalid level still yields slog.LevelInfo, so failures that happen
	// before PersistentPreRunE (argument validation, unknown commands) are
	// logged. The hook then rejects the level with ErrInvalidLevel.
	level, err := logger.ParseLevel(cfg.LogLevel)
	a.log = a.newLogger(level)
	if err != nil {
		a.log.WarnContext(ctx, "falling back to info log level", logger.Error(err))
	}

	// cobra falls back to os.Args for nil.
	if args == nil {
		args = []string{}
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.ErrorContext(ctx, "command failed", logger.Error(err))
		return err
	}
	return nil
}

func (a *app) newLogger(level slog.Level) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(environment.Parse(a.cfg.Env), "utilkit"),
		logger.WithLevel(level),
		logger.WithOutput(a.stderr),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextValue("command", commandKey{}),
	)
}

func (a *app) rootCommand() *cobra.Command {
	var (
		output   string
		logLevel string
	)

	root := &cobra.Command{
		Use:   "utilkit",
		Short: "Small string and number helpers",
		Long: `utilkit exposes pure helpers over numbers and strings:
parity checks, summation, capitalization, reversal and word counting.

Place "--" before negative numbers, for example: utilkit sum -- -1 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			a.log = a.newLogger(level)

			format, err := ParseFormat(output)
			if err != nil {
				return err
			}
			a.format = format
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", a.cfg.Output, "output format (text, json, yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		a.parityCommand("is-even", "Report whether each integer is even", isEven),
		a.parityCommand("is-odd", "Report whether each integer is odd", isOdd),
		a.sumCommand(),
		a.capitalizeCommand(),
		a.textCommand("reverse", "Reverse the characters of the text", reverse),
		a.textCommand("count-words", "Count whitespace-separated words", countWords),
	)

	return root
}

// withCommand tags ctx so that log records carry the command name.
func withCommand(cmd *cobra.Command) context.Context {
	return context.WithValue(cmd.Context(), commandKey{}, cmd.Name())
}
