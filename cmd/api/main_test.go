package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// syncCounter records how often the logger was flushed.
type syncCounter struct {
	zapcore.Core
	syncs *int
}

func (c syncCounter) Sync() error {
	*c.syncs++
	return c.Core.Sync()
}

func TestExitCode(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	syncs := 0
	zlog := zap.New(syncCounter{Core: core, syncs: &syncs})

	assert.Equal(t, 0, exitCode(zlog, nil))
	assert.Zero(t, logs.Len())
	assert.Equal(t, 1, syncs)

	assert.Equal(t, 1, exitCode(zlog, errors.New("listen tcp: address in use")))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.ErrorLevel, entry.Level)
	assert.Equal(t, "server stopped", entry.Message)
	assert.Equal(t, 2, syncs)
}
