package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for raw, want := range cases {
		got, ok := ParseLevel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	got, ok := ParseLevel("chatty")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestInternalLoggerDefaultsToErrors(t *testing.T) {
	l := GetInternalLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, l.Enabled(context.Background(), slog.LevelError))

	SetInternalLogLevel(slog.LevelDebug)
	defer SetInternalLogLevel(slog.LevelError)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}
