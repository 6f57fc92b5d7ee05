package sync

import (
	"context"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireCounter считает срабатывания и позволяет дождаться нужного количества
type fireCounter struct {
	mu    stdsync.Mutex
	count int
	ch    chan struct{}
}

func newFireCounter() *fireCounter {
	return &fireCounter{ch: make(chan struct{}, 64)}
}

func (f *fireCounter) fire() {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
	f.ch <- struct{}{}
}

func (f *fireCounter) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func (f *fireCounter) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for fire %d of %d", i+1, n)
		}
	}
}

// waitForWaiter блокируется, пока кто-нибудь не подпишется на clock.After
func waitForWaiter(t *testing.T, clock *ManualClock) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		clock.mu.Lock()
		n := len(clock.waiters)
		clock.mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for a clock waiter")
}

func TestIntervalScheduler_FiresOnEachTick(t *testing.T) {
	clock := NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	scheduler := NewIntervalScheduler(clock, time.Minute)
	defer scheduler.Stop()

	counter := newFireCounter()
	scheduler.Start(context.Background(), counter.fire)

	waitForWaiter(t, clock)
	clock.Advance(time.Minute)
	counter.wait(t, 1)

	waitForWaiter(t, clock)
	clock.Advance(time.Minute)
	counter.wait(t, 1)

	assert.Equal(t, 2, counter.total())
}

func TestIntervalScheduler_StopIsIdempotent(t *testing.T) {
	clock := NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	scheduler := NewIntervalScheduler(clock, time.Minute)

	counter := newFireCounter()
	scheduler.Start(context.Background(), counter.fire)

	scheduler.Stop()
	scheduler.Stop()

	// После остановки тики не доходят
	clock.Advance(5 * time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, counter.total())
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	clock := NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	counter := newFireCounter()
	debouncer := NewDebouncer(clock, 2*time.Second, 10*time.Second, counter.fire)

	// Пачка триггеров внутри периода тишины дает одно срабатывание
	debouncer.Trigger()
	clock.Advance(time.Second)
	debouncer.Trigger()
	clock.Advance(time.Second)
	debouncer.Trigger()

	clock.Advance(2 * time.Second)
	counter.wait(t, 1)

	// Устаревшие таймеры первых триггеров молчат
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 1, counter.total())
}

func TestDebouncer_MaxWaitForcesFlush(t *testing.T) {
	clock := NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	counter := newFireCounter()
	debouncer := NewDebouncer(clock, 2*time.Second, 5*time.Second, counter.fire)

	// Непрерывный поток триггеров: период тишины не наступает никогда,
	// но maxWait все равно выталкивает отправку
	debouncer.Trigger()
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		debouncer.Trigger()
	}

	counter.wait(t, 1)
	assert.GreaterOrEqual(t, counter.total(), 1)
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	clock := NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	counter := newFireCounter()
	debouncer := NewDebouncer(clock, time.Second, 10*time.Second, counter.fire)

	debouncer.Trigger()
	clock.Advance(time.Second)
	counter.wait(t, 1)

	debouncer.Trigger()
	clock.Advance(time.Second)
	counter.wait(t, 1)

	assert.Equal(t, 2, counter.total())
}
