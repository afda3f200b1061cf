// Package logger builds *slog.Logger instances for the utilkit command-line
// tool using functional options.
//
// New creates either a text or a JSON handler, applies default attributes and
// wraps the handler so that values stored in a context.Context are attached to
// every record logged with the *Context methods.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "utilkit"),
//		logger.WithOutput(os.Stderr),
//		logger.WithContextValue("command", commandKey{}),
//	)
//	log.InfoContext(ctx, "command finished", logger.Duration(time.Since(start)))
//
// Environment presets:
//
//   - Development: text output, debug level.
//   - Staging and Production: JSON output, info level.
//
// ParseLevel converts "debug", "info", "warn" and "error" (any case) into a
// slog.Level for use with WithLevel.
//
// The pure helper packages never log. Only the CLI layer does.
package logger
