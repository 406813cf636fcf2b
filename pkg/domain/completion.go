package domain

// Completion is the result of solving a trace: the chosen start state and the
// cheapest sequence of transitions that reproduces every required output.
//
// Cost is always ExtraTransitions + NewStates: one per transition added during
// the search, plus one more per synthesized destination.
type Completion struct {
	Start            State      `json:"start"`
	Cost             int        `json:"cost"`
	ExtraTransitions int        `json:"extra_transitions"`
	NewStates        int        `json:"new_states"`
	Path             []PathStep `json:"path"`
}

// Outputs returns the emitted symbol of every step in path order.
func (c *Completion) Outputs() []string {
	out := make([]string, len(c.Path))
	for i, s := range c.Path {
		out[i] = s.Output
	}
	return out
}
