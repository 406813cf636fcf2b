package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/splice/pkg/domain"
)

// tableEntry is one transition as written in a table file:
// states.<from>.<input> -> { to, out }.
type tableEntry struct {
	To  string `mapstructure:"to"`
	Out string `mapstructure:"out"`
}

type tableFile struct {
	States map[string]map[string]tableEntry `mapstructure:"states"`
}

// LoadFile reads a transition table from a YAML or JSON file. Both formats are
// decoded into a generic map first and then mapped onto the typed table, so
// they share one validation path.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse model JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse model YAML: %w", err)
		}
	}

	var cfg tableFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid model file %s: %w", path, err)
	}

	var transitions []domain.Transition
	for from, byInput := range cfg.States {
		for input, entry := range byInput {
			t := domain.Transition{
				From:   domain.State(from),
				Input:  input,
				Output: entry.Out,
				To:     domain.State(entry.To),
			}
			if err := validate(t); err != nil {
				return nil, fmt.Errorf("invalid model file %s: %w", path, err)
			}
			transitions = append(transitions, t)
		}
	}

	return New(transitions)
}

func validate(t domain.Transition) error {
	if t.From == "" || t.To == "" {
		return fmt.Errorf("transition (%s, %s) is missing an endpoint", t.From, t.Input)
	}
	if !binary(t.Input) || len(t.Input) != 2 {
		return fmt.Errorf("input %q of state %s must be two binary symbols", t.Input, t.From)
	}
	if !binary(t.Output) || len(t.Output) != 1 {
		return fmt.Errorf("output %q of state %s must be one binary symbol", t.Output, t.From)
	}
	return nil
}

func binary(s string) bool {
	for _, r := range s {
		if r != '0' && r != '1' {
			return false
		}
	}
	return len(s) > 0
}
