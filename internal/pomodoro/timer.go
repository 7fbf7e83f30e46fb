package pomodoro

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Phase identifies which countdown the timer is in.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

// String returns the display name of the phase.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// Default session lengths.
const (
	DefaultWork  = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

// Timer is a work/break countdown. The countdown itself is advanced by
// Tick, one second per call; Run drives Tick at 1 Hz until its context is
// cancelled. All methods are safe for concurrent use.
type Timer struct {
	mu        sync.Mutex
	work      time.Duration
	brk       time.Duration
	remaining time.Duration
	phase     Phase
	running   bool

	// OnTick is called after every Tick while running, outside the lock.
	OnTick func(phase Phase, remaining time.Duration)
	// OnPhaseEnd is called when a countdown reaches zero and the timer
	// flips to the next phase.
	OnPhaseEnd func(next Phase)
}

// New returns a stopped timer with the default session lengths.
func New() *Timer {
	return &Timer{
		work:      DefaultWork,
		brk:       DefaultBreak,
		remaining: DefaultWork,
	}
}

// Configure sets the session lengths and resets the timer to a stopped
// work phase. A running countdown is abandoned.
func (t *Timer) Configure(work, brk time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if work <= 0 {
		work = DefaultWork
	}
	if brk <= 0 {
		brk = DefaultBreak
	}
	t.work = work
	t.brk = brk
	t.phase = PhaseWork
	t.remaining = work
	t.running = false
}

// Start resumes the countdown.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = true
}

// Pause halts the countdown without losing the remaining time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Reset stops the timer and restores the full work countdown.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.phase = PhaseWork
	t.remaining = t.work
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Remaining returns the time left in the current phase.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Tick advances the countdown by one second. When a phase reaches zero
// the timer flips to the other phase and keeps running. Paused timers
// ignore ticks.
func (t *Timer) Tick() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}

	t.remaining -= time.Second
	var flipped bool
	if t.remaining <= 0 {
		flipped = true
		if t.phase == PhaseWork {
			t.phase = PhaseBreak
			t.remaining = t.brk
		} else {
			t.phase = PhaseWork
			t.remaining = t.work
		}
	}
	phase, remaining := t.phase, t.remaining
	onTick, onPhaseEnd := t.OnTick, t.OnPhaseEnd
	t.mu.Unlock()

	if flipped && onPhaseEnd != nil {
		onPhaseEnd(phase)
	}
	if onTick != nil {
		onTick(phase, remaining)
	}
}

// Run drives the countdown at 1 Hz until ctx is cancelled. It is meant to
// be launched once per timer in its own goroutine.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// FormatClock renders a duration as "mm:ss".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
