package progrock_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/adapters/telemetry/progrock"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type lines struct {
	mu    sync.Mutex
	debug []string
	warn  []string
}

func (l *lines) Debug() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.debug...)
}

func newLogger(t *testing.T) (*mocks.MockLogger, *lines) {
	t.Helper()
	out := &lines{}
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		out.mu.Lock()
		defer out.mu.Unlock()
		out.debug = append(out.debug, msg)
	}).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		out.mu.Lock()
		defer out.mu.Unlock()
		out.warn = append(out.warn, msg)
	}).AnyTimes()
	return log, out
}

func hasPrefix(all []string, prefix string) int {
	n := 0
	for _, s := range all {
		if strings.HasPrefix(s, prefix) {
			n++
		}
	}
	return n
}

func TestRecorder_RendersPhases(t *testing.T) {
	log, out := newLogger(t)
	recorder := progrock.New(log)

	ctx, scan := recorder.Record(context.Background(), domain.PhaseScan)
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, scan, fromCtx)

	scan.Log(domain.LogLevelDebug, "3 duplicate sets with 6 members")
	scan.Cached()
	scan.Complete(nil)

	_, index := recorder.Record(ctx, domain.PhaseIndex)
	index.Complete(nil)

	_, lock := recorder.Record(ctx, domain.PhaseLock)
	lock.Log(domain.LogLevelWarn, "lock unchanged")
	lock.Complete(errors.New("write failed"))

	require.NoError(t, recorder.Close())

	debug := out.Debug()
	assert.Contains(t, debug, domain.PhaseScan+": 3 duplicate sets with 6 members")
	assert.Equal(t, 1, hasPrefix(debug, domain.PhaseScan+" cached in "))
	assert.Equal(t, 1, hasPrefix(debug, domain.PhaseIndex+" done in "))
	assert.Equal(t, []string{domain.PhaseLock + ": lock unchanged"}, out.warn)
	assert.Equal(t, 1, hasPrefix(debug, domain.PhaseLock+" failed: write failed"))
}

func TestRecorder_Canceled(t *testing.T) {
	log, out := newLogger(t)
	recorder := progrock.New(log)

	_, scan := recorder.Record(context.Background(), domain.PhaseScan)
	scan.Complete(context.Canceled)

	assert.Contains(t, out.Debug(), domain.PhaseScan+" canceled")
}

func TestRenderer_MultilineLog(t *testing.T) {
	log, out := newLogger(t)
	recorder := progrock.NewRecorder(progrock.NewRenderer(log))

	_, scan := recorder.Record(context.Background(), domain.PhaseScan)
	scan.Log(domain.LogLevelInfo, "first\nsecond")

	assert.Equal(t, []string{domain.PhaseScan + ": first", domain.PhaseScan + ": second"}, out.Debug())
}
