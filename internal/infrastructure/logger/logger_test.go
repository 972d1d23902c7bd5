package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("production honours level", func(t *testing.T) {
		l, err := New("warn", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Core().Enabled(zapcore.InfoLevel) || !l.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("expected warn level logger")
		}
	})

	t.Run("production falls back to info", func(t *testing.T) {
		l, err := New("loud", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Core().Enabled(zapcore.DebugLevel) || !l.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("expected info level logger")
		}
	})

	t.Run("development logs debug", func(t *testing.T) {
		l, err := New("error", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug level logger")
		}
	})
}
