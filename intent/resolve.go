package intent

import "sort"

// ResolverState is the recency list of concrete noun mentions used
// for pronoun resolution. It lives for exactly one command parse and
// is always passed explicitly; there is no package-level state.
type ResolverState struct {
	// mentions, most recent last. Lookup scans from the end, so
	// duplicates are allowed and the latest occurrence wins.
	mentions []string
}

// Push records a concrete noun mention.
func (s *ResolverState) Push(lemma string) {
	s.mentions = append(s.mentions, lemma)
}

// Resolve returns the most recent compatible antecedent. Generic
// pronouns of this domain ("it", "that", "them") match any concrete
// noun, so compatibility is simply non-emptiness of the state.
func (s *ResolverState) Resolve() (string, bool) {
	if len(s.mentions) == 0 {
		return "", false
	}

	return s.mentions[len(s.mentions)-1], true
}

// Len reports the number of recorded mentions.
func (s *ResolverState) Len() int {
	return len(s.mentions)
}

// ResolveClause substitutes the pronoun placeholders of a clause
// result and updates the resolver state. Roles are visited in token
// order so a pronoun can see concrete nouns mentioned earlier in the
// same clause, but never later ones. Unresolvable placeholders are
// dropped, never an error. Resolved nouns are references and are not
// pushed back into the state.
func ResolveClause(res ClauseResult, state *ResolverState) ClauseResult {
	type slot struct {
		index int
		obj   *Object
		prep  int // index into res.PrepPhrases, -1 for the direct object
	}

	var slots []slot
	if res.DirectObject != nil {
		slots = append(slots, slot{index: res.DirectObject.Index, obj: res.DirectObject, prep: -1})
	}
	for i := range res.PrepPhrases {
		slots = append(slots, slot{index: res.PrepPhrases[i].Object.Index, obj: &res.PrepPhrases[i].Object, prep: i})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].index < slots[j].index
	})

	dropPrep := map[int]bool{}

	for _, sl := range slots {
		if !sl.obj.Pronoun {
			state.Push(sl.obj.Lemma)
			continue
		}

		antecedent, ok := state.Resolve()
		if !ok {
			if sl.prep < 0 {
				res.DirectObject = nil
			} else {
				dropPrep[sl.prep] = true
			}
			continue
		}

		sl.obj.Lemma = antecedent
		sl.obj.Pronoun = false
		sl.obj.Resolved = true
	}

	if len(dropPrep) > 0 {
		kept := res.PrepPhrases[:0:0]
		for i, pp := range res.PrepPhrases {
			if !dropPrep[i] {
				kept = append(kept, pp)
			}
		}
		res.PrepPhrases = kept
	}

	return res
}
