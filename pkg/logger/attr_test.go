package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/logger"
)

func TestError(t *testing.T) {
	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestAttrHelpers(t *testing.T) {
	assert.Equal(t, slog.String("component", "cli"), logger.Component("cli"))
	assert.Equal(t, slog.Int("args", 3), logger.ArgCount(3))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
}
