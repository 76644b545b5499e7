package logger

import (
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
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.WarnLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{" INFO ", zapcore.InfoLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitialize(t *testing.T) {
	defer SetLogger(nil)

	require.NoError(t, Initialize(true, "info"))
	assert.True(t, JSONOutput)

	require.NoError(t, Initialize(false, "debug"))
	assert.False(t, JSONOutput)

	assert.Error(t, Initialize(false, "verbose"))
}

func TestStructuredHelpers(t *testing.T) {
	defer SetLogger(nil)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core).Sugar())

	Debugw("ranked values", "count", 6)
	Warnw("dropping unknown code", "code", "XYZ")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "ranked values", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "XYZ", entries[1].ContextMap()["code"])
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Infow("ignored") })
}
