package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndWith(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	log := NewZapLogger(zap.New(core))

	ctx := context.Background()

	child := log.With("component", "test")
	child.Debug(ctx, "d")
	child.Info(ctx, "i", "k", "v")
	child.Warn(ctx, "w")
	child.Error(ctx, "e")

	entries := observed.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "d", entries[0].Message)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, "w", entries[2].Message)
	assert.Equal(t, "e", entries[3].Message)

	fields := entries[1].ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, "v", fields["k"])
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info(context.Background(), "ignored")
	assert.NoError(t, log.Sync())
}
