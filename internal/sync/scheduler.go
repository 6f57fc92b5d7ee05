package sync

import (
	"context"
	stdsync "sync"
	"time"
)

// Scheduler is a cancellable repeating task driving periodic sync cycles.
// Injected into the orchestrator so tests substitute a manual trigger
// instead of wall-clock timers.
type Scheduler interface {
	// Start begins firing fn at the configured cadence until Stop
	// or context cancellation
	Start(ctx context.Context, fn func())

	// Stop cancels the repeating task; safe to call more than once
	Stop()
}

// IntervalScheduler fires at a fixed interval on the injected clock.
type IntervalScheduler struct {
	clock    Clock
	stop     chan struct{}
	interval time.Duration
	once     stdsync.Once
}

var _ Scheduler = (*IntervalScheduler)(nil)

// NewIntervalScheduler creates a scheduler with the given period
func NewIntervalScheduler(clock Clock, interval time.Duration) *IntervalScheduler {
	return &IntervalScheduler{
		clock:    clock,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins firing fn every interval until Stop or context cancellation
func (s *IntervalScheduler) Start(ctx context.Context, fn func()) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-s.clock.After(s.interval):
				fn()
			}
		}
	}()
}

// Stop cancels the repeating task
func (s *IntervalScheduler) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}

// Debouncer coalesces bursts of trigger calls into a single fire after a
// quiet period, with a forced flush once the oldest pending trigger is
// maxWait old. A burst of local writes causes one sync cycle, not one per
// write, and a continuous stream of writes cannot postpone the flush
// forever.
type Debouncer struct {
	clock   Clock
	fn      func()
	mu      stdsync.Mutex
	first   time.Time
	delay   time.Duration
	maxWait time.Duration
	gen     int
}

// NewDebouncer creates a debouncer that fires fn after delay of quiet or
// maxWait after the first pending trigger, whichever comes first
func NewDebouncer(clock Clock, delay, maxWait time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		clock:   clock,
		delay:   delay,
		maxWait: maxWait,
		fn:      fn,
	}
}

// Trigger (re)starts the quiet period. Each call supersedes the previous
// pending fire unless the forced-flush deadline has arrived.
func (d *Debouncer) Trigger() {
	d.mu.Lock()

	now := d.clock.Now()
	if d.first.IsZero() {
		d.first = now
	}

	// Принудительный сброс: первый неотправленный триггер ждет слишком долго
	if d.maxWait > 0 && now.Sub(d.first) >= d.maxWait {
		d.gen++
		d.first = time.Time{}
		d.mu.Unlock()
		d.fn()
		return
	}

	d.gen++
	gen := d.gen
	wait := d.clock.After(d.delay)
	d.mu.Unlock()

	go func() {
		<-wait

		d.mu.Lock()
		current := d.gen == gen
		if current {
			d.first = time.Time{}
		}
		d.mu.Unlock()

		// Сработал только последний запланированный таймер
		if current {
			d.fn()
		}
	}()
}
