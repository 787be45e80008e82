package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLoggerLevels(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", "key1", "value1", "number", 42)
	logger.Warn("warning message")
	logger.Error("error message", fmt.Errorf("boom"), ErrorCodeKey, ErrorSingularMatrix)

	require.NotEmpty(t, buffer.String())
	assert.False(t, logger.ContainsMessage("hidden"))
	assert.True(t, logger.ContainsMessage("shown"))
	assert.True(t, logger.ContainsField("key1", "value1"))
	assert.True(t, logger.ContainsField("number", 42.0))
	assert.True(t, logger.ContainsField(ErrAttrKey, "boom"))
	assert.True(t, logger.ContainsField(ErrorCodeKey, ErrorSingularMatrix))

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, LevelError))
	assert.False(t, logger.Enabled(ctx, LevelDebug))
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	child := logger.With(ModelNameKey, "LinearRegression", ComponentKey, "linear")
	child.Info("fitted", OperationKey, OperationFit, SamplesKey, 10)

	entries, err := logger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "LinearRegression", entry[ModelNameKey])
	assert.Equal(t, "linear", entry[ComponentKey])
	assert.Equal(t, OperationFit, entry[OperationKey])
	assert.Equal(t, 10.0, entry[SamplesKey])
}

func TestTestLoggerProvider(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	provider.GetLogger().Info("provider message")
	provider.GetLoggerWithName("metrics").Info("named message")
	provider.SetLevel(LevelError)
	provider.GetLogger().Info("suppressed")

	out := buffer.String()
	assert.Contains(t, out, "provider message")
	assert.Contains(t, out, "named message")
	assert.Contains(t, out, `"ml.component":"metrics"`)
	assert.NotContains(t, out, "suppressed")
}

func TestTestLoggerConcurrent(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				logger.Info("message", "goroutine_id", id, "message_id", j)
			}
		}(i)
	}
	wg.Wait()

	entries, err := logger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("dropped")
	logger.With(ModelNameKey, "LinearRegression").Info("trained", LossKey, 0.25, IterationKey, 100)
	logger.Error("fit failed", errors.NewNotFittedError("LinearRegression", "Predict"), OperationKey, OperationPredict)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "info", info["level"])
	assert.Equal(t, "trained", info["message"])
	assert.Equal(t, "LinearRegression", info[ModelNameKey])
	assert.Equal(t, 0.25, info[LossKey])

	var failure map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	assert.Equal(t, "error", failure["level"])
	assert.Equal(t, "NotFittedError", failure["type"])
	assert.Equal(t, "Predict", failure["method"])

	assert.True(t, logger.Enabled(context.Background(), LevelWarn))
	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestInstallZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)
	InstallZerologWarnings(logger)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted positives", 0))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "precision", entry["metric"])
	assert.Equal(t, "UndefinedMetricWarning", entry["type"])
}

func TestSlogLoggerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger := NewSlogLogger(slog.New(handler))

	logger.Error("inverse failed", errors.NewModelError("Inverse", "singular matrix", errors.ErrSingularMatrix))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Contains(t, entry[ErrAttrKey], "singular matrix")
	assert.NotEmpty(t, entry[StacktraceAttrKey])
}

func TestDefaultLogger(t *testing.T) {
	assert.False(t, GetLogger().Enabled(context.Background(), LevelError))

	logger, _ := NewTestLogger(LevelDebug)
	SetLogger(logger)
	defer SetLogger(nil)

	GetLogger().Debug("routed")
	assert.True(t, logger.ContainsMessage("routed"))
}

func TestToLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ToLogLevel("debug"))
	assert.Equal(t, slog.LevelError, ToLogLevel("error"))
	assert.Panics(t, func() { ToLogLevel("verbose") })
}

func BenchmarkTestLogger(b *testing.B) {
	logger, _ := NewTestLogger(LevelInfo)
	contextLogger := logger.With(ModelNameKey, "BenchmarkModel")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contextLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationPredict,
			SamplesKey, 1000,
		)
	}
}
