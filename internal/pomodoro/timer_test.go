package pomodoro

import (
	"testing"
	"time"
)

func TestTickCountsDownWhileRunning(t *testing.T) {
	tm := New()
	tm.Configure(2*time.Second, time.Second)
	tm.Start()

	tm.Tick()
	if got := tm.Remaining(); got != time.Second {
		t.Errorf("Remaining() = %v, want 1s", got)
	}
}

func TestPausedTimerIgnoresTicks(t *testing.T) {
	tm := New()
	tm.Configure(2*time.Second, time.Second)

	tm.Tick()
	if got := tm.Remaining(); got != 2*time.Second {
		t.Errorf("Remaining() = %v, want 2s while paused", got)
	}
}

func TestPhaseFlipsWorkToBreak(t *testing.T) {
	tm := New()
	tm.Configure(time.Second, 3*time.Second)
	tm.Start()

	var flipped Phase = -1
	tm.OnPhaseEnd = func(next Phase) { flipped = next }

	tm.Tick()
	if tm.Phase() != PhaseBreak {
		t.Errorf("Phase() = %v, want PhaseBreak", tm.Phase())
	}
	if tm.Remaining() != 3*time.Second {
		t.Errorf("Remaining() = %v, want full break length", tm.Remaining())
	}
	if flipped != PhaseBreak {
		t.Errorf("OnPhaseEnd next = %v, want PhaseBreak", flipped)
	}
	if !tm.Running() {
		t.Error("timer should keep running across a phase flip")
	}
}

func TestPhaseFlipsBreakToWork(t *testing.T) {
	tm := New()
	tm.Configure(time.Second, time.Second)
	tm.Start()

	tm.Tick() // work -> break
	tm.Tick() // break -> work
	if tm.Phase() != PhaseWork {
		t.Errorf("Phase() = %v, want PhaseWork", tm.Phase())
	}
	if tm.Remaining() != time.Second {
		t.Errorf("Remaining() = %v, want full work length", tm.Remaining())
	}
}

func TestResetRestoresWorkPhase(t *testing.T) {
	tm := New()
	tm.Configure(5*time.Second, time.Second)
	tm.Start()
	tm.Tick()
	tm.Tick()

	tm.Reset()
	if tm.Running() {
		t.Error("Reset() should stop the timer")
	}
	if tm.Phase() != PhaseWork {
		t.Errorf("Phase() = %v, want PhaseWork", tm.Phase())
	}
	if tm.Remaining() != 5*time.Second {
		t.Errorf("Remaining() = %v, want full work length", tm.Remaining())
	}
}

func TestConfigureRestartsCleanly(t *testing.T) {
	tm := New()
	tm.Configure(5*time.Second, time.Second)
	tm.Start()
	tm.Tick()

	tm.Configure(10*time.Second, 2*time.Second)
	if tm.Running() {
		t.Error("Configure() should leave the timer stopped")
	}
	if tm.Remaining() != 10*time.Second {
		t.Errorf("Remaining() = %v, want new work length", tm.Remaining())
	}
}

func TestConfigureRejectsNonPositive(t *testing.T) {
	tm := New()
	tm.Configure(0, -time.Second)
	if tm.Remaining() != DefaultWork {
		t.Errorf("Remaining() = %v, want default work length", tm.Remaining())
	}
}

func TestOnTickCallback(t *testing.T) {
	tm := New()
	tm.Configure(3*time.Second, time.Second)

	var gotPhase Phase
	var gotRemaining time.Duration
	calls := 0
	tm.OnTick = func(p Phase, r time.Duration) {
		gotPhase, gotRemaining = p, r
		calls++
	}

	tm.Tick() // paused, no callback
	tm.Start()
	tm.Tick()

	if calls != 1 {
		t.Fatalf("OnTick calls = %d, want 1", calls)
	}
	if gotPhase != PhaseWork || gotRemaining != 2*time.Second {
		t.Errorf("OnTick(%v, %v), want (PhaseWork, 2s)", gotPhase, gotRemaining)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{61 * time.Minute, "61:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
