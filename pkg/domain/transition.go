package domain

import "strconv"

// State identifies a transducer state. Predefined states come from the model
// table; synthesized states are created during a search and labeled "N1",
// "N2", ... scoped to that invocation. Both kinds are interchangeable as
// transition endpoints.
type State string

// SynthesizedState returns the label of the n-th state created during a search.
func SynthesizedState(n int) State {
	return State("N" + strconv.Itoa(n))
}

// Transition moves the transducer from one state to another, consuming a
// two-symbol input and emitting a one-symbol output.
type Transition struct {
	From   State  `json:"from" yaml:"from"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	To     State  `json:"to" yaml:"to"`
}

// PathStep is one transition taken in a completion, annotated with how it was
// obtained. A transition added earlier in the branch and taken again is not
// marked Extra: its cost was paid at the step that introduced it.
type PathStep struct {
	Transition

	// Extra is true when this step introduced a transition that is not part
	// of the predefined table.
	Extra bool `json:"extra"`

	// NewState is true when the extra transition also created its destination.
	NewState bool `json:"new_state"`
}
