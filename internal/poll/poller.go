package poll

import (
	"context"
	"log"
	"sync"
	"time"

	"jobmatch/internal/state"
)

const DefaultInterval = 10 * time.Second

type Task func(ctx context.Context)

// Poller runs a task immediately and then on every tick until stopped.
type Poller struct {
	name     string
	interval time.Duration
	task     Task
	logger   *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(name string, interval time.Duration, task Task, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{name: name, interval: interval, task: task, logger: logger}
}

// Start begins polling. A poller that is already running is stopped first,
// so a restart never leaves two loops alive.
func (p *Poller) Start(ctx context.Context) {
	if p == nil || p.task == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	if ctx.Err() != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.loop(loopCtx, done)
	if p.logger != nil {
		p.logger.Printf("[Poll] started name=%s interval=%s", p.name, p.interval)
	}
}

// Stop cancels the loop and waits for it to exit.
func (p *Poller) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopLocked() && p.logger != nil {
		p.logger.Printf("[Poll] stopped name=%s", p.name)
	}
}

// Running reports whether the loop is alive. A loop ends on Stop or when
// the context it was started with is done.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// BindTo stops the poller when the lifecycle unmounts.
func (p *Poller) BindTo(l *state.Lifecycle) {
	l.OnUnmount(p.Stop)
}

func (p *Poller) stopLocked() bool {
	if p.cancel == nil {
		return false
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
	return true
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.task(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if ctx.Err() != nil {
				return
			}
			p.task(ctx)
		}
	}
}
