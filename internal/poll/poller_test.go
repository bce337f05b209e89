package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobmatch/internal/state"
)

func TestPoller_RunsImmediatelyThenOnInterval(t *testing.T) {
	var n int32
	p := New("test", 10*time.Millisecond, func(context.Context) { atomic.AddInt32(&n, 1) }, nil)

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&n) >= 1 }, 50*time.Millisecond, time.Millisecond)
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&n) >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPoller_StopHaltsTask(t *testing.T) {
	var n int32
	p := New("test", 5*time.Millisecond, func(context.Context) { atomic.AddInt32(&n, 1) }, nil)

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&n) >= 2 }, time.Second, time.Millisecond)
	p.Stop()
	assert.False(t, p.Running())

	after := atomic.LoadInt32(&n)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&n))

	// stopping twice is harmless
	p.Stop()
}

func TestPoller_RestartCancelsPriorLoop(t *testing.T) {
	var active, maxActive int32
	p := New("test", 2*time.Millisecond, func(ctx context.Context) {
		cur := atomic.AddInt32(&active, 1)
		for {
			m := atomic.LoadInt32(&maxActive)
			if cur <= m || atomic.CompareAndSwapInt32(&maxActive, m, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&active, -1)
	}, nil)

	for i := 0; i < 20; i++ {
		p.Start(context.Background())
	}
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestPoller_TaskContextCancelledOnStop(t *testing.T) {
	started := make(chan struct{})
	var sawCancel atomic.Bool
	p := New("test", time.Hour, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		sawCancel.Store(true)
	}, nil)

	p.Start(context.Background())
	<-started
	p.Stop()
	assert.True(t, sawCancel.Load())
}

func TestPoller_BoundToLifecycle(t *testing.T) {
	var l state.Lifecycle
	l.Mount()

	p := New("test", time.Hour, func(context.Context) {}, nil)
	p.BindTo(&l)
	p.Start(context.Background())
	assert.True(t, p.Running())

	l.Unmount()
	assert.False(t, p.Running())
}

func TestNew_DefaultInterval(t *testing.T) {
	p := New("test", 0, func(context.Context) {}, nil)
	assert.Equal(t, DefaultInterval, p.interval)
}

func TestPoller_NotRunningAfterParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New("test", 5*time.Millisecond, func(context.Context) {}, nil)

	p.Start(ctx)
	assert.True(t, p.Running())

	cancel()
	assert.Eventually(t, func() bool { return !p.Running() }, time.Second, time.Millisecond)

	// a later Start after the parent ended runs again on a fresh context
	p.Start(context.Background())
	assert.True(t, p.Running())
	p.Stop()
	assert.False(t, p.Running())
}
