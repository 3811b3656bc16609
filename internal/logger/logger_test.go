package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deppfellow/go-contacts/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	service := NewLoggerService(&cfg)
	assert.Nil(t, service.GetApplication())

	// Shutdown is safe without an application.
	service.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLogger_LevelAndFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(&cfg, nil, &buf)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), `"message":"visible"`)
	assert.Contains(t, buf.String(), `"service":"contacts"`)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	traced := WithTraceContext(log, nil)
	traced.Info().Msg("x")
	assert.NotContains(t, buf.String(), "trace.id")
}

func TestNewCommandMonitor(t *testing.T) {
	t.Run("nil when nothing to log", func(t *testing.T) {
		log := zerolog.Nop()
		assert.Nil(t, NewCommandMonitor(&log, false, 0))
	})

	t.Run("slow commands logged at warn", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)

		monitor := NewCommandMonitor(&log, false, 100*time.Millisecond)
		require.NotNil(t, monitor)
		assert.Nil(t, monitor.Started)

		fast := &event.CommandSucceededEvent{}
		fast.CommandName = "find"
		fast.Duration = 10 * time.Millisecond
		monitor.Succeeded(context.Background(), fast)
		assert.Empty(t, buf.String())

		slow := &event.CommandSucceededEvent{}
		slow.CommandName = "find"
		slow.Duration = 150 * time.Millisecond
		monitor.Succeeded(context.Background(), slow)
		assert.Contains(t, buf.String(), "slow store command")
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})

	t.Run("failures always logged", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)

		monitor := NewCommandMonitor(&log, false, time.Second)
		failed := &event.CommandFailedEvent{Failure: "boom"}
		failed.CommandName = "insert"
		monitor.Failed(context.Background(), failed)

		assert.Contains(t, buf.String(), "store command failed")
		assert.Contains(t, buf.String(), "boom")
	})
}
