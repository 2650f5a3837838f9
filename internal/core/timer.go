package core

import "time"

// FixedStep paces periodic work such as the viewer's slideshow, which
// reseeds and regenerates the terrain once per interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing every interval. The first call
// to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the period. Non-positive values mean one second.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// Interval returns the current period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops accumulated time so the next step is a full interval away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = f.now()
}

// ShouldStep reports whether a period has elapsed since the last step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
