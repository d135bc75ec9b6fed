// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audfx/effects"
)

var ErrAmbiguousStep = errors.New("chain step must name exactly one effect")

// Step is one entry of the chain preset. Exactly one field is set:
//
//	chain:
//	  - eq: {bass: 4, treble: -2}
//	  - duck: {threshold_db: -24, ratio: 6}
//	  - fade: {fade_in: 0.5, fade_out: 2}
//	  - reverse: true
type Step struct {
	EQ      *effects.EQSettings        `yaml:"eq,omitempty"`
	Fade    *effects.FadeSettings      `yaml:"fade,omitempty"`
	Reverse bool                       `yaml:"reverse,omitempty"`
	Duck    *effects.SidechainSettings `yaml:"duck,omitempty"`
}

// UnmarshalYAML starts a duck step from the default sidechain settings, so a
// preset only lists what it changes.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		EQ      *effects.EQSettings   `yaml:"eq"`
		Fade    *effects.FadeSettings `yaml:"fade"`
		Reverse bool                  `yaml:"reverse"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*s = Step{EQ: raw.EQ, Fade: raw.Fade, Reverse: raw.Reverse}

	node := mappingValue(value, "duck")
	if node == nil {
		return nil
	}

	duck := effects.DefaultSidechainSettings()
	if err := node.Decode(&duck); err != nil {
		return fmt.Errorf("duck: %w", err)
	}
	s.Duck = &duck

	return nil
}

// mappingValue returns the value node stored under key, or nil when value is
// not a mapping or has no such key.
func mappingValue(value *yaml.Node, key string) *yaml.Node {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == key {
			return value.Content[i+1]
		}
	}
	return nil
}

// Processor validates the step and returns the effect it names.
func (s Step) Processor() (effects.Processor, error) {
	var (
		p     effects.Processor
		count int
	)

	if s.EQ != nil {
		p, count = *s.EQ, count+1
	}
	if s.Fade != nil {
		p, count = *s.Fade, count+1
	}
	if s.Reverse {
		p, count = effects.Reverser{}, count+1
	}
	if s.Duck != nil {
		p, count = *s.Duck, count+1
	}

	if count != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrAmbiguousStep, count)
	}

	if err := checkSettings(p); err != nil {
		return nil, err
	}

	return p, nil
}

func checkSettings(p effects.Processor) error {
	var err error

	switch v := p.(type) {
	case effects.EQSettings:
		_, err = v.Normalize()
	case effects.FadeSettings:
		_, err = v.Normalize()
	case effects.SidechainSettings:
		_, err = v.Normalize()
	}

	return err
}
