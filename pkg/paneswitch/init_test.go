package paneswitch

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/constants"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
)

func TestInitLevels(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")
	t.Setenv("ENVIRONMENT", "")

	Init(Options{LogLevel: "warn"})
	ctx := context.Background()
	assert.True(t, GetLogger().Enabled(ctx, slog.LevelWarn))
	assert.False(t, GetLogger().Enabled(ctx, slog.LevelInfo))
	assert.False(t, internal.GetInternalLogger().Enabled(ctx, slog.LevelDebug))

	Init(Options{LogLevel: "warn", Debug: true})
	assert.True(t, internal.GetInternalLogger().Enabled(ctx, slog.LevelDebug))
}

func TestInitEnvOverridesLevel(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "debug")

	Init(Options{LogLevel: "error"})
	assert.True(t, GetLogger().Enabled(context.Background(), slog.LevelDebug))
}

func TestInitTheme(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "")

	Init(Options{})
	assert.Equal(t, internal.HexToColor(0x008080), internal.GetTheme().AccentColor)

	Init(Options{PrimaryThemeColorHex: 0xFF8800})
	assert.Equal(t, internal.HexToColor(0xFF8800), internal.GetTheme().AccentColor)
}
