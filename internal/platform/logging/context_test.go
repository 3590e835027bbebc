package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedContext(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return WithLogger(context.Background(), zap.New(core)), recorded
}

func TestTraceIDFromContext(t *testing.T) {
	ctx := contextWithTraceID(context.Background(), "trace-123")
	if got := TraceIDFromContext(ctx); got != "trace-123" {
		t.Fatalf("expected trace-123, got %q", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace ID, got %q", got)
	}
}

func TestContextWithTraceIDEmpty(t *testing.T) {
	ctx := context.Background()
	if contextWithTraceID(ctx, "") != ctx {
		t.Fatal("expected the same context for an empty trace ID")
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	ctx, recorded := observedContext(zapcore.ErrorLevel)

	LogError(ctx, "bind failed", errors.New("address already in use"), zap.String("addr", ":8080"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["error"] != "address already in use" {
		t.Fatalf("expected error field, got %+v", fields)
	}
	if fields["addr"] != ":8080" {
		t.Fatalf("expected addr field, got %+v", fields)
	}
}

func TestLogErrorNilError(t *testing.T) {
	ctx, recorded := observedContext(zapcore.ErrorLevel)

	LogError(ctx, "no error attached", nil)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; ok {
		t.Fatal("did not expect an error field")
	}
}

func TestLogInfoAndWarnWriteEntries(t *testing.T) {
	ctx, recorded := observedContext(zapcore.InfoLevel)

	LogInfo(ctx, "info entry")
	LogWarn(ctx, "warn entry")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "info entry" {
		t.Fatalf("unexpected first entry: %+v", entries[0].Entry)
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "warn entry" {
		t.Fatalf("unexpected second entry: %+v", entries[1].Entry)
	}
}

func TestLogFatalAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))
	ctx := WithLogger(context.Background(), logger)

	defer func() {
		if recover() == nil {
			t.Fatal("expected fatal hook to panic")
		}
		entries := recorded.All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Level != zapcore.FatalLevel {
			t.Fatalf("expected fatal level, got %v", entries[0].Level)
		}
		if entries[0].ContextMap()["error"] != "boom" {
			t.Fatalf("expected error field, got %+v", entries[0].ContextMap())
		}
	}()

	LogFatal(ctx, "listen failed", errors.New("boom"))
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	if LoggerFromContext(nil) != Logger() {
		t.Fatal("expected global logger for nil context")
	}
	ctx := context.WithValue(context.Background(), ctxLoggerKey{}, (*zap.Logger)(nil))
	if LoggerFromContext(ctx) != Logger() {
		t.Fatal("expected global logger for nil logger in context")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	logger := zap.NewNop()
	//nolint:staticcheck // nil context is handled explicitly
	ctx := WithLogger(nil, logger)
	if LoggerFromContext(ctx) != logger {
		t.Fatal("expected stored logger")
	}
}
