package benchutil

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Printer writes fixed-width result lines.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

var stdout = NewPrinter(os.Stdout)

// Label prints "label:" and val in a 28 column line.
func (p *Printer) Label(label, val string) {
	fmt.Fprintf(p.w, "%-21s%7s\n", label+":", val)
}

// Time prints "label:" followed by seconds with five decimals.
func (p *Printer) Time(label string, seconds float64) {
	fmt.Fprintf(p.w, "%-21s%3.5f\n", label+":", seconds)
}

// Step prints "label:" and a right aligned count.
func (p *Printer) Step(label string, count int64) {
	fmt.Fprintf(p.w, "%-14s%14d\n", label+":", count)
}

// StepTime prints one row of a per-step table. A count of -1 leaves the
// count column out.
func (p *Printer) StepTime(label string, seconds float64, count int64) {
	if count != -1 {
		fmt.Fprintf(p.w, "%5s%11d  %10.5f\n", label, count, seconds)
	} else {
		fmt.Fprintf(p.w, "%5s%23.5f\n", label, seconds)
	}
}

// StepNumber is StepTime labelled by a step index.
func (p *Printer) StepNumber(step int, seconds float64, count int64) {
	p.StepTime(strconv.Itoa(step), seconds, count)
}

// PrintLabel calls Label on a Printer writing to os.Stdout.
func PrintLabel(label, val string) { stdout.Label(label, val) }

// PrintTime calls Time on a Printer writing to os.Stdout.
func PrintTime(label string, seconds float64) { stdout.Time(label, seconds) }

// PrintStep calls Step on a Printer writing to os.Stdout.
func PrintStep(label string, count int64) { stdout.Step(label, count) }

// PrintStepTime calls StepTime on a Printer writing to os.Stdout.
func PrintStepTime(label string, seconds float64, count int64) {
	stdout.StepTime(label, seconds, count)
}

// PrintStepNumber calls StepNumber on a Printer writing to os.Stdout.
func PrintStepNumber(step int, seconds float64, count int64) {
	stdout.StepNumber(step, seconds, count)
}
