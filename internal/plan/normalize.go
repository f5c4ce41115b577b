package plan

import "fmt"

// Normalize fills in defaults. It must run before Validate.
//
//   - sampler defaults to "self"
//   - unnamed steps become "step-N", counting from 1
//   - a step without a kind gets one from the field that is set
func Normalize(p *Plan) {
	if p == nil {
		return
	}
	if p.Sampler == "" {
		p.Sampler = SamplerSelf
	}
	for i := range p.Steps {
		s := &p.Steps[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("step-%d", i+1)
		}
		if s.Kind != "" {
			continue
		}
		switch {
		case len(s.Command) > 0:
			s.Kind = KindExec
		case s.MB > 0:
			s.Kind = KindAlloc
		case s.Duration > 0:
			s.Kind = KindSleep
		}
	}
}
