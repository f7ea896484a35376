package intent

import (
	"strings"

	"github.com/questline/parley/token"
)

// Clause is a contiguous subsequence of the cleaned stream expressing
// one action. Read-only after segmentation.
type Clause struct {
	Tokens token.Stream

	// Conj is the stream index of the conjunction token that
	// terminated this clause, -1 if the clause ran to the end.
	Conj int
}

// DefaultConjunctions are the lemmas that join two independent
// action phrases. "then" is tagged as an adverb by the annotator but
// still separates clauses ("take the key then open the door").
var DefaultConjunctions = map[string]bool{
	"and":  true,
	"then": true,
}

// Segment splits the cleaned stream into ordered clauses at
// coordinating conjunctions. The conjunction token is consumed by
// the split. A conjunction that would leave an empty clause behind
// (leading, trailing, or doubled) is kept as ordinary content
// instead.
func Segment(stream token.Stream, conjunctions map[string]bool) []Clause {
	var clauses []Clause
	var current token.Stream

	for i, t := range stream {
		if isSeparator(t, conjunctions) && len(current) > 0 && hasContentAfter(stream, i, conjunctions) {
			clauses = append(clauses, Clause{Tokens: current, Conj: t.Index})
			current = nil
			continue
		}

		current = append(current, t)
	}

	if len(current) > 0 {
		clauses = append(clauses, Clause{Tokens: current, Conj: -1})
	}

	return clauses
}

func isSeparator(t token.Token, conjunctions map[string]bool) bool {
	if t.Category() == token.Conjunction {
		return true
	}

	return conjunctions[strings.ToLower(t.Lemma)]
}

// hasContentAfter reports whether any non-separator token follows
// position i, so that splitting there cannot produce an empty clause.
func hasContentAfter(stream token.Stream, i int, conjunctions map[string]bool) bool {
	for j := i + 1; j < len(stream); j++ {
		if !isSeparator(stream[j], conjunctions) {
			return true
		}
	}

	return false
}
