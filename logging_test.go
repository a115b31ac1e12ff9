package texpack

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	defer SetLogger(nil)

	// The silent default reports every level as disabled, so no record is
	// ever formatted or written anywhere.
	SetLogger(nil)
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected the default logger to produce no output")
	}
}

func TestSetLoggerSwapsActiveLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	logger().Warn("placement rejected", "reason", "test")
	if buf.Len() == 0 {
		t.Error("expected SetLogger to route output through the given logger")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	logger().Warn("should not appear")
	if buf.Len() != 0 {
		t.Error("expected SetLogger(nil) to restore the silent default")
	}
}
