package logctx

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestFromContextReturnsDefaultWhenUnset(t *testing.T) {
	require.Same(t, Default(), FromContext(context.Background()))
}

func TestFromContextReturnsAttachedLogger(t *testing.T) {
	custom := New("debug")
	ctx := WithLogger(context.Background(), custom)
	require.Same(t, custom, FromContext(ctx))
}

func TestNewSetsRequestedLevel(t *testing.T) {
	logger := New("warn")
	require.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	logger := New("bogus")
	require.Equal(t, log.InfoLevel, logger.GetLevel())
}
