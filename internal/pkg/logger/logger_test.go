package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupObservedLogger() *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	SetForTesting(zap.New(core))
	return logs
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-123")
	assert.Equal(t, "rid-123", RequestID(ctx))
}

func TestRequestID_Missing(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}

func TestCtxInfo_InjectsRequestID(t *testing.T) {
	logs := setupObservedLogger()

	ctx := WithRequestID(context.Background(), "rid-info")
	CtxInfo(ctx, "lead received")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "lead received", entries[0].Message)
	assert.Equal(t, "rid-info", entries[0].ContextMap()["request_id"])
}

func TestCtxInfo_NoRequestID(t *testing.T) {
	logs := setupObservedLogger()

	CtxInfo(context.Background(), "no id")

	entries := logs.All()
	assert.Len(t, entries, 1)
	_, hasID := entries[0].ContextMap()["request_id"]
	assert.False(t, hasID)
}

func TestCtxError_IncludesErrorAndRequestID(t *testing.T) {
	logs := setupObservedLogger()

	err := errors.New("partner unreachable")
	ctx := WithRequestID(context.Background(), "rid-err")
	CtxError(ctx, "forwarding failed", err)

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "partner unreachable", fields["error"])
	assert.Equal(t, "rid-err", fields["request_id"])
}

func TestError_NonContext(t *testing.T) {
	logs := setupObservedLogger()

	Error("boom", errors.New("fail"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "fail", entries[0].ContextMap()["error"])
}

func TestBuild_LevelParsing(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		assert.NotNil(t, build(level))
	}
}
