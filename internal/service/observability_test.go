package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	obs := NewLogUseCaseObserver(&logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "recommend",
		Duration: 1500 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"selected": 4},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "import-report",
		Err:  errors.New("boom"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ok map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	assert.Equal(t, "info", ok["level"])
	assert.Equal(t, "recommend", ok["use_case"])
	assert.Equal(t, float64(1500), ok["duration_ms"])
	assert.Equal(t, float64(4), ok["selected"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	assert.Equal(t, "error", failed["level"])
	assert.Equal(t, "boom", failed["error"])
	assert.Equal(t, false, failed["success"])
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
