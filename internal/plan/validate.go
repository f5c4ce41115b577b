package plan

import (
	"errors"
	"fmt"
)

// Validate checks a normalized plan. It does not mutate it.
func Validate(p *Plan) error {
	if p == nil {
		return errors.New("plan is nil")
	}
	switch p.Sampler {
	case SamplerSelf, SamplerChildren:
	default:
		return fmt.Errorf("sampler %q: must be %q or %q", p.Sampler, SamplerSelf, SamplerChildren)
	}
	if len(p.Steps) == 0 {
		return errors.New("plan has no steps")
	}

	seen := make(map[string]int, len(p.Steps))
	for i, s := range p.Steps {
		if prev, ok := seen[s.Name]; ok {
			return fmt.Errorf("step %d: name %q already used by step %d", i+1, s.Name, prev+1)
		}
		seen[s.Name] = i

		switch s.Kind {
		case KindExec:
			if len(s.Command) == 0 || s.Command[0] == "" {
				return fmt.Errorf("step %q: exec requires a command", s.Name)
			}
		case KindAlloc:
			if s.MB <= 0 {
				return fmt.Errorf("step %q: alloc requires mb > 0, got %d", s.Name, s.MB)
			}
			// alloc grows this process, which RUSAGE_CHILDREN never sees.
			if p.Sampler == SamplerChildren {
				return fmt.Errorf("step %q: alloc runs in-process and cannot be measured by the %q sampler", s.Name, SamplerChildren)
			}
		case KindSleep:
			if s.Duration <= 0 {
				return fmt.Errorf("step %q: sleep requires a positive duration, got %v", s.Name, s.Duration)
			}
		case "":
			return fmt.Errorf("step %q: no kind given and none of command, mb or duration set", s.Name)
		default:
			return fmt.Errorf("step %q: unknown kind %q", s.Name, s.Kind)
		}
	}
	return nil
}
