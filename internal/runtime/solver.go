package runtime

import (
	"log/slog"
	"sort"

	"github.com/aretw0/splice/internal/logging"
	"github.com/aretw0/splice/pkg/domain"
	"github.com/aretw0/splice/pkg/model"
)

// Solver finds the cheapest way to extend a transducer model so that it
// reproduces a trace exactly. Cost is 1 per added transition plus 1 more per
// synthesized destination state.
type Solver struct {
	model  *model.Model
	logger *slog.Logger
}

// NewSolver creates a solver over the given model. A nil logger disables
// logging.
func NewSolver(m *model.Model, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Solver{model: m, logger: logger}
}

// Solve tries every predefined state as a start point (the start itself is
// free) and returns the globally cheapest completion. Start states are
// enumerated in sorted order and a later candidate wins only on strictly
// lower cost, so repeated calls return the same path.
//
// The memoization cache lives and dies inside this call: nothing carries over
// to the next trace.
func (s *Solver) Solve(steps []domain.Step) (*domain.Completion, error) {
	sess := &session{
		model: s.model,
		steps: steps,
		memo:  make(map[memoKey]searchResult),
	}

	var best *domain.Completion
	for _, start := range s.model.States() {
		res := sess.search(0, start, extensionSet{}, 0)
		if !res.ok {
			s.logger.Debug("start state yields no completion", "start", start)
			continue
		}
		s.logger.Debug("start state evaluated", "start", start, "cost", res.cost)
		if best == nil || res.cost < best.Cost {
			best = buildCompletion(start, res)
		}
	}

	if best == nil {
		return nil, domain.ErrNoCompletion
	}

	s.logger.Info("trace solved",
		"steps", len(steps),
		"start", best.Start,
		"cost", best.Cost,
		"extra_transitions", best.ExtraTransitions,
		"new_states", best.NewStates,
	)
	return best, nil
}

// memoKey identifies a sub-problem by content: two searches that reach the
// same step with the same state, extensions and synthesized-state count are
// interchangeable no matter how they got there.
type memoKey struct {
	index int
	state domain.State
	synth int
	ext   string
}

type searchResult struct {
	cost int
	path []domain.PathStep
	ok   bool
}

// session holds the per-invocation search context. It is discarded when Solve
// returns.
type session struct {
	model *model.Model
	steps []domain.Step
	memo  map[memoKey]searchResult
}

// search returns the cheapest completion of steps[i:] from cur, given the
// extensions added so far on this branch and the number of states synthesized.
func (s *session) search(i int, cur domain.State, ext extensionSet, synth int) searchResult {
	if i == len(s.steps) {
		return searchResult{ok: true}
	}

	key := memoKey{index: i, state: cur, synth: synth, ext: ext.key()}
	if res, seen := s.memo[key]; seen {
		return res
	}

	step := s.steps[i]
	var best searchResult

	if t, defined := s.model.Lookup(cur, step.Input); defined {
		// A predefined transition owns this (state, input) pair. It is the
		// only candidate: if its output mismatches, the branch is dead,
		// because an existing transition can never be overwritten.
		if t.Output == step.Output {
			best = s.follow(i, t, false, false, ext, synth)
		}
	} else if t, added := ext.lookup(cur, step.Input); added {
		// Same rule for an extension added earlier on this branch. Taking it
		// again is free; it was paid for when it was introduced.
		if t.Output == step.Output {
			best = s.follow(i, t, false, false, ext, synth)
		}
	} else {
		// No transition exists yet for (state, input), so one is added now.
		// Existing destinations are tried in sorted order with the
		// synthesized state last, and a later candidate replaces the
		// incumbent only on strictly lower cost. Equal-cost ties therefore
		// resolve identically on every run.
		for _, dest := range s.reachable(ext) {
			t := domain.Transition{From: cur, Input: step.Input, Output: step.Output, To: dest}
			cand := s.follow(i, t, true, false, ext.with(t), synth)
			if cand.ok && (!best.ok || cand.cost < best.cost) {
				best = cand
			}
		}

		t := domain.Transition{
			From:   cur,
			Input:  step.Input,
			Output: step.Output,
			To:     domain.SynthesizedState(synth + 1),
		}
		cand := s.follow(i, t, true, true, ext.with(t), synth+1)
		if cand.ok && (!best.ok || cand.cost < best.cost) {
			best = cand
		}
	}

	s.memo[key] = best
	return best
}

// follow takes t at step i and completes the rest of the trace from its
// destination, prepending t to the sub-path. An extra transition costs 1, and
// 1 more if it created its destination.
func (s *session) follow(i int, t domain.Transition, extra, created bool, ext extensionSet, synth int) searchResult {
	sub := s.search(i+1, t.To, ext, synth)
	if !sub.ok {
		return searchResult{}
	}

	cost := sub.cost
	if extra {
		cost++
	}
	if created {
		cost++
	}

	path := make([]domain.PathStep, 0, len(sub.path)+1)
	path = append(path, domain.PathStep{Transition: t, Extra: extra, NewState: created})
	path = append(path, sub.path...)

	return searchResult{cost: cost, path: path, ok: true}
}

// reachable is the pool of legal extension destinations: every predefined
// state plus every destination already used by an extension on this branch,
// sorted for deterministic traversal.
func (s *session) reachable(ext extensionSet) []domain.State {
	out := s.model.States()
	seen := make(map[domain.State]struct{}, len(out))
	for _, st := range out {
		seen[st] = struct{}{}
	}
	for dest := range ext.destinations() {
		if _, dup := seen[dest]; !dup {
			seen[dest] = struct{}{}
			out = append(out, dest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func buildCompletion(start domain.State, res searchResult) *domain.Completion {
	extra, created := 0, 0
	for _, ps := range res.path {
		if ps.Extra {
			extra++
		}
		if ps.NewState {
			created++
		}
	}
	return &domain.Completion{
		Start:            start,
		Cost:             res.cost,
		ExtraTransitions: extra,
		NewStates:        created,
		Path:             res.path,
	}
}
