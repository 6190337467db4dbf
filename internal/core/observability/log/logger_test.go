package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	require.Error(t, err)
}

func TestFieldsReachZap(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.With(String("vehicle", "courier")).Warn("attach rejected",
		Float64("max_thrust", 20000),
		Int("mount", 3),
		Bool("enabled", true),
		Error(errors.New("too large")),
	)

	entries := recorded.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "courier", fields["vehicle"])
	assert.Equal(t, 20000.0, fields["max_thrust"])
	assert.Equal(t, int64(3), fields["mount"])
	assert.Equal(t, true, fields["enabled"])
	assert.Equal(t, "too large", fields["error"])
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestEnabledFollowsCore(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core))
	assert.False(t, l.Enabled(LevelDebug))
	assert.True(t, l.Enabled(LevelWarn))

	assert.False(t, NewNop().Enabled(LevelError))
}
