package migrate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGooseLogger_FatalfLogsAndReturns(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	l := gooseLogger{zap.New(core).Sugar()}

	l.Printf("applied %d", 3)
	l.Fatalf("failed to apply %s", "00002_reviews.sql")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "applied 3", entries[0].Message)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "failed to apply 00002_reviews.sql", entries[1].Message)
}
