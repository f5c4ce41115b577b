// Package plan loads YAML workload plans for the memcounter run command.
package plan

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sampler names.
const (
	SamplerSelf     = "self"
	SamplerChildren = "children"
)

// Step kinds.
const (
	KindExec  = "exec"
	KindAlloc = "alloc"
	KindSleep = "sleep"
)

// Plan is a sequence of steps measured one after the other.
type Plan struct {
	Name    string `yaml:"name"`
	Sampler string `yaml:"sampler"`
	Steps   []Step `yaml:"steps"`
}

// Step is one measured region of a plan.
type Step struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// exec
	Command []string `yaml:"command"`

	// alloc: MiB to allocate and touch
	MB int `yaml:"mb"`

	// sleep
	Duration time.Duration `yaml:"duration"`
}

// Load reads, normalizes and validates the plan at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a plan, fills in defaults and validates it.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	Normalize(&p)
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
