package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "pingslab-site", "test"), logs
}

func TestLogRateLimitTriggered(t *testing.T) {
	sl, logs := observed()
	sl.LogRateLimitTriggered(context.Background(), "192.0.2.1", "curl/8", "req-1", "/v1/contact")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "rate_limit_triggered", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "WARN", fields["severity"])
	assert.Equal(t, "192.0.2.1", fields["ip"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, `{"endpoint":"/v1/contact"}`, fields["details"])
}

func TestLogCSRFViolationIsHigh(t *testing.T) {
	sl, logs := observed()
	sl.LogCSRFViolation(context.Background(), "192.0.2.1", "", "", "/contact", "missing")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "HIGH", entry.ContextMap()["severity"])
	assert.NotContains(t, entry.ContextMap(), "user_agent")
}

func TestDefaultLoggerCanBeReplaced(t *testing.T) {
	sl, logs := observed()
	SetDefault(sl)
	t.Cleanup(func() { SetDefault(nil) })

	DefaultLogger().LogRateLimitTriggered(context.Background(), "ip", "", "", "/")
	assert.Equal(t, 1, logs.Len())
}

func TestGetSeverityDefaultsToMedium(t *testing.T) {
	assert.Equal(t, SeverityMEDIUM, GetSeverity("something_else"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@x.com", MaskEmail("jane@x.com"))
	assert.Equal(t, "***", MaskEmail("a"))
	assert.Equal(t, "***@b.com", MaskEmail("a@b.com"))
}
