package stopwatch

import (
	"fmt"
	"time"
)

// StopWatch measures elapsed time across one or more Start/Stop cycles.
// The zero value is a stopped watch with nothing accumulated.
type StopWatch struct {
	startedAt time.Time
	elapsed   time.Duration
	running   bool
}

// New returns a stopped StopWatch with no accumulated time.
func New() *StopWatch {
	return &StopWatch{}
}

// StartNew returns a StopWatch that is already running.
func StartNew() *StopWatch {
	sw := New()
	sw.Start()
	return sw
}

// Start begins (or resumes) measuring. Calling Start on a running watch has
// no effect.
func (sw *StopWatch) Start() {
	if sw.running {
		return
	}
	sw.startedAt = time.Now()
	sw.running = true
}

// Stop halts measuring and folds the current interval into the accumulated
// total. Calling Stop on a stopped watch has no effect.
func (sw *StopWatch) Stop() {
	if !sw.running {
		return
	}
	sw.elapsed += time.Since(sw.startedAt)
	sw.running = false
}

// Reset returns the watch to its initial stopped state and discards all
// accumulated time.
func (sw *StopWatch) Reset() {
	*sw = StopWatch{}
}

// Elapsed returns the total measured duration. On a running watch the
// in-progress interval is included.
func (sw *StopWatch) Elapsed() time.Duration {
	if sw.running {
		return sw.elapsed + time.Since(sw.startedAt)
	}
	return sw.elapsed
}

// ElapsedMillis returns the total measured duration in whole milliseconds.
func (sw *StopWatch) ElapsedMillis() int64 {
	return sw.Elapsed().Milliseconds()
}

// ElapsedMicros returns the total measured duration in whole microseconds.
func (sw *StopWatch) ElapsedMicros() int64 {
	return sw.Elapsed().Microseconds()
}

// ElapsedNanos returns the total measured duration in nanoseconds.
func (sw *StopWatch) ElapsedNanos() int64 {
	return sw.Elapsed().Nanoseconds()
}

// ElapsedSeconds returns the total measured duration as floating-point
// seconds.
func (sw *StopWatch) ElapsedSeconds() float64 {
	return sw.Elapsed().Seconds()
}

// IsRunning reports whether the watch is currently measuring.
func (sw *StopWatch) IsRunning() bool {
	return sw.running
}

// String renders the elapsed time as seconds with millisecond precision,
// e.g. "1.234s".
func (sw *StopWatch) String() string {
	e := sw.Elapsed()
	return fmt.Sprintf("%d.%03ds", int64(e/time.Second), int64(e%time.Second)/int64(time.Millisecond))
}
