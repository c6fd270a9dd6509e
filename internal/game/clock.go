package game

import (
	"fmt"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Stopwatch captures wall-clock instants at start and stop. The authoritative
// elapsed time is stop-start, computed once in Stop; Live is for display only.
type Stopwatch struct {
	clock   Clock
	start   time.Time
	elapsed time.Duration
	running bool
	started bool
}

func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stopwatch{clock: clock}
}

func (s *Stopwatch) Start() {
	s.start = s.clock.Now()
	s.elapsed = 0
	s.running = true
	s.started = true
}

// Stop freezes the elapsed time. Calling it again returns the frozen value.
func (s *Stopwatch) Stop() time.Duration {
	if !s.running {
		return s.elapsed
	}
	s.elapsed = s.clock.Now().Sub(s.start)
	if s.elapsed < 0 {
		s.elapsed = 0
	}
	s.running = false
	return s.elapsed
}

func (s *Stopwatch) Running() bool {
	return s.running
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Stopwatch) Live() time.Duration {
	if !s.started {
		return 0
	}
	if !s.running {
		return s.elapsed
	}
	d := s.clock.Now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// Millis converts a duration to fractional milliseconds, the unit stored in
// ranking lists.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func FromMillis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// FormatMillis renders milliseconds as seconds with two decimals (1234 -> "1.23").
func FormatMillis(ms float64) string {
	return fmt.Sprintf("%.2f", ms/1000)
}

func FormatSeconds(d time.Duration) string {
	return FormatMillis(Millis(d))
}
