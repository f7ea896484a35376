// Package intent implements the command-interpretation pipeline:
// wrapper stripping, clause segmentation, per-clause role extraction
// and cross-clause pronoun resolution, aggregated into one
// structured command record.
//
// The pipeline is a pure, sequential fold over clauses. It never
// errors: missing roles degrade to empty fields.
package intent

import "github.com/questline/parley/token"

// Pipeline carries the heuristic tables of one parser
// configuration. Parses are independent; a Pipeline may be shared
// across goroutines for different commands.
type Pipeline struct {
	Wrappers     []Wrapper
	Conjunctions map[string]bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		Wrappers:     DefaultWrappers,
		Conjunctions: DefaultConjunctions,
	}
}

// Parse interprets one annotated command. Resolver state is created
// fresh for the parse and discarded, so pronoun antecedents never
// leak between commands.
func (p *Pipeline) Parse(stream token.Stream, spans []token.EntitySpan) Command {
	cleaned := Strip(stream, p.Wrappers)
	spans = pruneSpans(spans, cleaned)

	clauses := Segment(cleaned, p.Conjunctions)

	state := &ResolverState{}
	results := make([]ClauseResult, 0, len(clauses))
	for _, cl := range clauses {
		res := Extract(cl, spans)
		results = append(results, ResolveClause(res, state))
	}

	return Aggregate(results)
}

// pruneSpans drops entity spans that reference stripped tokens.
func pruneSpans(spans []token.EntitySpan, cleaned token.Stream) []token.EntitySpan {
	if len(cleaned) == 0 {
		return nil
	}

	first := cleaned[0].Index

	kept := spans[:0:0]
	for _, span := range spans {
		if span.Start >= first {
			kept = append(kept, span)
		}
	}

	return kept
}
