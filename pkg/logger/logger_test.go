package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

func TestZapLogger_ConvertsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &ZapLogger{logger: zap.New(core)}

	l.WithFields(interfaces.String("component", "video")).
		Warn("Video rejected", interfaces.Error(errors.New("boom")), interfaces.Int("errors", 2))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Video rejected", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "video", fields["component"])
	assert.Equal(t, "boom", fields["error"])
	assert.EqualValues(t, 2, fields["errors"])
}

func TestConfig_Build(t *testing.T) {
	l, err := (&Config{Level: "not-a-level", Encoding: "json"}).Build()
	require.NoError(t, err)

	assert.True(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Zap().Core().Enabled(zapcore.DebugLevel))
}

func TestNoop(t *testing.T) {
	l := NewNoop()
	assert.Same(t, l, l.WithFields(interfaces.String("k", "v")))
}
