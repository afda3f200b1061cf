package logger

import (
	"log/slog"
	"time"
)

// Error returns an attribute with key "error" or an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ArgCount records how many positional arguments a command received.
func ArgCount(n int) slog.Attr {
	return slog.Int("args", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
