package runtime

import (
	"sort"
	"strings"

	"github.com/aretw0/splice/pkg/domain"
)

// extensionSet is a persistent map from (state, input) to the transition added
// for that pair during search. Branches share structure: adding an entry
// allocates a single node and leaves the parent set untouched, so sibling
// branches never observe each other's additions.
//
// Invariant: the set never contains a pair the predefined table already
// defines, and a pair is added at most once per branch.
type extensionSet struct {
	head *extensionEntry
	size int
}

type extensionEntry struct {
	t    domain.Transition
	next *extensionEntry
}

// lookup returns the extension out of from on input, if this branch added one.
func (s extensionSet) lookup(from domain.State, input string) (domain.Transition, bool) {
	for e := s.head; e != nil; e = e.next {
		if e.t.From == from && e.t.Input == input {
			return e.t, true
		}
	}
	return domain.Transition{}, false
}

// with returns a new set containing t on top of the receiver's entries.
func (s extensionSet) with(t domain.Transition) extensionSet {
	return extensionSet{
		head: &extensionEntry{t: t, next: s.head},
		size: s.size + 1,
	}
}

// destinations returns every state used as an extension target, synthesized
// states included, deduplicated.
func (s extensionSet) destinations() map[domain.State]struct{} {
	out := make(map[domain.State]struct{}, s.size)
	for e := s.head; e != nil; e = e.next {
		out[e.t.To] = struct{}{}
	}
	return out
}

// key returns a canonical, order-independent encoding of the set. Two sets
// with equal content produce equal keys regardless of insertion order, which
// is what makes them usable in memoization keys.
func (s extensionSet) key() string {
	if s.size == 0 {
		return ""
	}
	entries := make([]string, 0, s.size)
	for e := s.head; e != nil; e = e.next {
		entries = append(entries, string(e.t.From)+","+e.t.Input+">"+string(e.t.To)+","+e.t.Output)
	}
	sort.Strings(entries)
	return strings.Join(entries, ";")
}
