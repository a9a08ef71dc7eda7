package core

import "time"

// maxBurst bounds how many ticks Due reports after a stall.
const maxBurst = 4

// FixedStep converts wall-clock time into a whole number of simulation
// ticks so the step rate does not follow the frame rate.
type FixedStep struct {
	interval time.Duration
	owed     time.Duration
	prev     time.Time

	now func() time.Time
}

// NewFixedStep ticks tps times per second. One tick is owed up front.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.owed = fs.interval
	return fs
}

// SetTPS changes the rate; tps <= 0 selects 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.interval = time.Second / time.Duration(tps)
}

// Due returns the ticks that elapsed since the previous call, at most
// maxBurst. Time beyond the burst is dropped.
func (f *FixedStep) Due() int {
	t := f.now()
	if !f.prev.IsZero() {
		f.owed += t.Sub(f.prev)
	}
	f.prev = t

	n := int(f.owed / f.interval)
	if n > maxBurst {
		f.owed = 0
		return maxBurst
	}
	f.owed -= time.Duration(n) * f.interval
	return n
}
