package model

import (
	"fmt"
	"sort"

	"github.com/aretw0/splice/pkg/domain"
)

// Model holds the predefined transition table of the base transducer. The
// table is fixed at construction and never modified afterwards; searches only
// read it.
type Model struct {
	table  map[domain.State]map[string]domain.Transition
	states []domain.State
}

// New builds a model from a flat list of transitions. A (from, input) pair may
// appear at most once: the base transducer is deterministic.
func New(transitions []domain.Transition) (*Model, error) {
	table := make(map[domain.State]map[string]domain.Transition)
	seen := make(map[domain.State]struct{})

	for _, t := range transitions {
		if _, ok := table[t.From]; !ok {
			table[t.From] = make(map[string]domain.Transition)
		}
		if _, dup := table[t.From][t.Input]; dup {
			return nil, fmt.Errorf("duplicate transition for (%s, %s)", t.From, t.Input)
		}
		table[t.From][t.Input] = t
		seen[t.From] = struct{}{}
		seen[t.To] = struct{}{}
	}

	states := make([]domain.State, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	return &Model{table: table, states: states}, nil
}

// Default returns the built-in four-state table.
func Default() *Model {
	m, err := New([]domain.Transition{
		{From: "S0", Input: "01", Output: "1", To: "S1"},
		{From: "S0", Input: "11", Output: "0", To: "S1"},
		{From: "S0", Input: "10", Output: "0", To: "S2"},
		{From: "S1", Input: "01", Output: "1", To: "S3"},
		{From: "S2", Input: "00", Output: "1", To: "S3"},
		{From: "S2", Input: "11", Output: "0", To: "S1"},
		{From: "S2", Input: "10", Output: "0", To: "S3"},
		{From: "S3", Input: "01", Output: "1", To: "S0"},
	})
	if err != nil {
		// The built-in table is statically valid.
		panic(err)
	}
	return m
}

// Lookup returns the predefined transition out of from on input, if any.
func (m *Model) Lookup(from domain.State, input string) (domain.Transition, bool) {
	t, ok := m.table[from][input]
	return t, ok
}

// States returns the predefined state pool in sorted order. These are the
// valid search start points.
func (m *Model) States() []domain.State {
	out := make([]domain.State, len(m.states))
	copy(out, m.states)
	return out
}

// Transitions returns every predefined transition, sorted by source state then
// input, for introspection and rendering.
func (m *Model) Transitions() []domain.Transition {
	var out []domain.Transition
	for _, byInput := range m.table {
		for _, t := range byInput {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Input < out[j].Input
	})
	return out
}
