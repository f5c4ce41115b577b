package benchutil

import "time"

// Timer measures wall-clock time between Start and Stop.
type Timer struct {
	start, stop time.Time
}

// Start records the start time.
func (t *Timer) Start() {
	t.start = time.Now()
	t.stop = time.Time{}
}

// Stop records the end time.
func (t *Timer) Stop() {
	t.stop = time.Now()
}

// Elapsed is the time between Start and Stop, or since Start while the timer
// is still running.
func (t *Timer) Elapsed() time.Duration {
	if t.stop.IsZero() {
		return time.Since(t.start)
	}
	return t.stop.Sub(t.start)
}

// Seconds is Elapsed in seconds.
func (t *Timer) Seconds() float64 {
	return t.Elapsed().Seconds()
}

// Millisecs is Elapsed in milliseconds.
func (t *Timer) Millisecs() float64 {
	return float64(t.Elapsed()) / float64(time.Millisecond)
}

// Microsecs is Elapsed in microseconds.
func (t *Timer) Microsecs() float64 {
	return float64(t.Elapsed()) / float64(time.Microsecond)
}

// TimePrint runs op and prints how long it took, labelled by label.
func TimePrint(label string, op func()) {
	timePrint(stdout, label, op)
}

func timePrint(p *Printer, label string, op func()) {
	var t Timer
	t.Start()
	op()
	t.Stop()
	p.Time(label, t.Seconds())
}
