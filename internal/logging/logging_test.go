package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetup_Debug(t *testing.T) {
	logger := Setup(true)
	if logger == nil {
		t.Fatal("Setup(true) returned nil logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected logger enabled at Debug level when debug=true")
	}
}

func TestSetup_Info(t *testing.T) {
	logger := Setup(false)
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected logger enabled at Info level when debug=false")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected logger disabled at Debug level when debug=false")
	}
}

func TestWithLogger_FromContext_RoundTrip(t *testing.T) {
	logger := Setup(true)
	ctx := WithLogger(context.Background(), logger)

	if FromContext(ctx) != logger {
		t.Error("FromContext did not return the logger stored with WithLogger")
	}
}

func TestFromContext_ReturnsDefault_WhenNotInContext(t *testing.T) {
	logger := FromContext(context.Background())
	if logger != slog.Default() {
		t.Error("FromContext should return slog.Default() when no logger is stored")
	}
}
