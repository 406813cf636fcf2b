/*
Package splice computes the minimum-cost way to extend a partially specified
finite-state transducer so that it reproduces an input/output trace exactly.

# Concept

The base transducer is a Mealy machine: on each two-symbol input it emits a
one-symbol output and moves to a next state. Some of its transitions are
predefined and immutable. Given a trace of (input, required output) steps,
splice picks a start state and a sequence of transitions, predefined or newly
added, that reproduces every required output. Each added transition costs 1,
plus 1 more when its destination is a brand-new synthesized state, and splice
minimizes the total.

Existing transitions are never overwritten: if the current state already has a
transition for an input and its output mismatches the requirement, that branch
of the search is dead. The search is exhaustive, memoized per invocation, and
deterministic, so equal traces always produce equal paths.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/splice"
	)

	func main() {
		eng := splice.New()

		completion, err := eng.Solve("001_010_010_101_100_001_110_110")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("extra cost:", completion.Cost)
		for _, step := range completion.Path {
			fmt.Printf("%s --(%s/%s)--> %s\n", step.From, step.Input, step.Output, step.To)
		}
	}

Custom transition tables can be supplied with WithModel, loaded from a YAML or
JSON file via the model package.
*/
package splice
