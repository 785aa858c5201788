package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) (int, error) {
	r.calls.Add(1)
	return 8, r.err
}

func TestCatalogWarmer_StartWorker(t *testing.T) {
	refresher := &countingRefresher{}
	warmer := NewCatalogWarmer(refresher, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		warmer.StartWorker(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestCatalogWarmer_WarmsImmediately(t *testing.T) {
	refresher := &countingRefresher{}
	warmer := NewCatalogWarmer(refresher, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go warmer.StartWorker(ctx)
	defer cancel()

	require.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestCatalogWarmer_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	refresher := &countingRefresher{err: errors.New("source down")}
	warmer := NewCatalogWarmer(refresher, time.Second, zap.New(core))

	warmer.warm(context.Background())

	entries := logs.FilterMessage("catalog refresh failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "catalog_warmer", entries[0].LoggerName)
}
