package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tinyfsm/internal/door"
)

var errUnknownEvent = errors.New("unknown event")

// Script is a sequence of door events read from YAML.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step names one event and, for lock and unlock, the key used.
type Step struct {
	Event string `yaml:"event"`
	Key   uint   `yaml:"key,omitempty"`
}

// Value converts the step into the door's event value.
func (s Step) Value() (any, error) {
	switch s.Event {
	case "open":
		return door.OpenEvent{}, nil
	case "close":
		return door.CloseEvent{}, nil
	case "lock":
		return door.LockEvent{Key: s.Key}, nil
	case "unlock":
		return door.UnlockEvent{Key: s.Key}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownEvent, s.Event)
	}
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for i, st := range sc.Steps {
		if _, err := st.Value(); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return sc, nil
}

// LoadScript reads a script from path, or returns the built-in walk-through
// when path is empty.
func LoadScript(path string) (Script, error) {
	if path == "" {
		return ParseScript(defaultScript)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseScript(data)
}
