package benchutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{
			name:  "label",
			print: func(p *Printer) { p.Label("Graph Type", "pr") },
			want:  "Graph Type:               pr\n",
		},
		{
			name:  "time",
			print: func(p *Printer) { p.Time("Read Time", 1.5) },
			want:  "Read Time:           1.50000\n",
		},
		{
			name:  "step count",
			print: func(p *Printer) { p.Step("Nodes", 1024) },
			want:  "Nodes:                  1024\n",
		},
		{
			name:  "step time with count",
			print: func(p *Printer) { p.StepTime("td", 0.25, 42) },
			want:  "   td         42     0.25000\n",
		},
		{
			name:  "step time without count",
			print: func(p *Printer) { p.StepTime("c", 0.125, -1) },
			want:  "    c                0.12500\n",
		},
		{
			name:  "step number",
			print: func(p *Printer) { p.StepNumber(3, 2, 7) },
			want:  "    3          7     2.00000\n",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			test.print(NewPrinter(&buf))
			if diff := cmp.Diff(buf.String(), test.want); diff != "" {
				t.Errorf("output diff (-got +want):\n%s", diff)
			}
		})
	}
}

func TestTimePrint(t *testing.T) {
	var buf bytes.Buffer
	ran := false
	timePrint(NewPrinter(&buf), "Trial Time", func() { ran = true })

	if !ran {
		t.Errorf("timePrint did not run op")
	}
	if got := buf.String(); !strings.HasPrefix(got, "Trial Time:          0.0") {
		t.Errorf("timePrint output = %q, want a Trial Time line", got)
	}
}
