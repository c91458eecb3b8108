package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otec/pkg/environment"
	"github.com/dmitrymomot/otec/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewDefaults(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is below the default level")

	log.Info("hello", logger.Count(3))
	entry := decode(t, buf)
	assert.Equal(t, "hello", entry["msg"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Development, "otec"), logger.WithOutput(buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=otec")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "otec"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "otec", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestWithLevelName(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.NotZero(t, buf.Len())

	buf.Reset()
	log = logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
	log.Info("default level kept")
	assert.NotZero(t, buf.Len())
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	assert.NotPanics(t, func() { logger.New(logger.WithFormat(logger.FormatText)) })
}

func TestContextExtractors(t *testing.T) {
	type key struct{}
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(environment.LoggerExtractor(), nil),
		logger.WithContextValue("batch", key{}),
		logger.WithAttr(slog.String("app", "otec")),
	)

	ctx := environment.WithContext(context.Background(), environment.Staging)
	ctx = context.WithValue(ctx, key{}, "b-1")
	log.With(logger.Component("importer")).WithGroup("g").InfoContext(ctx, "msg")

	entry := decode(t, buf)
	assert.Equal(t, "otec", entry["app"])
	assert.Equal(t, "importer", entry["component"])
	group, ok := entry["g"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "staging", group["env"])
	assert.Equal(t, "b-1", group["batch"])
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	errs := logger.Errors(nil, errors.New("a"))
	assert.Equal(t, "errors", errs.Key)
	assert.Len(t, errs.Value.Group(), 1)
	assert.Equal(t, "1", errs.Value.Group()[0].Key)

	assert.Equal(t, "component", logger.Component("x").Key)
	assert.Equal(t, "command", logger.Command("x").Key)
	assert.Equal(t, "dataset", logger.Dataset("x").Key)
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logger.Discard().Error("dropped") })
}
