package intent

import (
	"testing"

	"github.com/questline/parley/token"
)

// tok builds an annotated token for hand-made clause fixtures.
func tok(i int, text, pos, dep string, head int) token.Token {
	return token.Token{Index: i, Text: text, Lemma: text, Pos: pos, Dep: dep, Head: head}
}

// kickClause is "kick it at the window" annotated the way the
// annotator does it.
func kickClause() Clause {
	return Clause{
		Conj: -1,
		Tokens: token.Stream{
			tok(0, "kick", token.PosVerb, token.DepRoot, -1),
			tok(1, "it", token.PosPron, token.DepDobj, 0),
			tok(2, "at", token.PosAdp, token.DepPrep, 0),
			tok(3, "the", token.PosDet, token.DepDet, 4),
			tok(4, "window", token.PosNoun, token.DepPobj, 2),
		},
	}
}

func TestExtractRoles(t *testing.T) {
	res := Extract(kickClause(), nil)

	if res.Verb != "kick" {
		t.Errorf("expected verb %q, got %q", "kick", res.Verb)
	}

	if res.DirectObject == nil {
		t.Fatal("expected a direct object")
	}

	if !res.DirectObject.Pronoun {
		t.Error("expected the pronoun direct object to stay a placeholder")
	}

	if len(res.PrepPhrases) != 1 {
		t.Fatalf("expected 1 prep phrase, got %d", len(res.PrepPhrases))
	}

	pp := res.PrepPhrases[0]
	if pp.Prep != "at" || pp.Object.Lemma != "window" {
		t.Errorf("expected (at, window), got (%s, %s)", pp.Prep, pp.Object.Lemma)
	}

	if len(res.Prepositions) != 1 || res.Prepositions[0] != "at" {
		t.Errorf("expected prepositions [at], got %v", res.Prepositions)
	}
}

func TestExtractLeftmostRootVerb(t *testing.T) {
	// two verbs, second attached to the first
	cl := Clause{
		Conj: -1,
		Tokens: token.Stream{
			tok(0, "go", token.PosVerb, token.DepRoot, -1),
			tok(1, "fetch", token.PosVerb, token.DepConj, 0),
			tok(2, "water", token.PosNoun, token.DepDobj, 1),
		},
	}

	res := Extract(cl, nil)

	if res.Verb != "go" {
		t.Errorf("expected leftmost root verb %q, got %q", "go", res.Verb)
	}
}

func TestExtractVerblessClause(t *testing.T) {
	// elliptical continuation "around the tree"
	cl := Clause{
		Conj: -1,
		Tokens: token.Stream{
			tok(5, "around", token.PosAdp, token.DepPrep, -1),
			tok(6, "the", token.PosDet, token.DepDet, 7),
			tok(7, "tree", token.PosNoun, token.DepPobj, 5),
		},
	}

	res := Extract(cl, nil)

	if res.Verb != "" {
		t.Errorf("expected no verb, got %q", res.Verb)
	}

	if len(res.PrepPhrases) != 1 || res.PrepPhrases[0].Object.Lemma != "tree" {
		t.Fatalf("expected (around, tree), got %v", res.PrepPhrases)
	}
}

func TestExtractAdverbialParticleCountsAsPreposition(t *testing.T) {
	cl := Clause{
		Conj: -1,
		Tokens: token.Stream{
			tok(0, "look", token.PosVerb, token.DepRoot, -1),
			tok(1, "around", token.PosAdv, token.DepAdvmod, 0),
		},
	}

	res := Extract(cl, nil)

	if len(res.Prepositions) != 1 || res.Prepositions[0] != "around" {
		t.Errorf("expected prepositions [around], got %v", res.Prepositions)
	}

	if res.DirectObject != nil {
		t.Error("expected no direct object")
	}
}

func TestExtractClauseEntities(t *testing.T) {
	cl := Clause{
		Conj: -1,
		Tokens: token.Stream{
			tok(0, "talk", token.PosVerb, token.DepRoot, -1),
			tok(1, "to", token.PosAdp, token.DepPrep, 0),
			tok(2, "John", token.PosPropn, token.DepPobj, 1),
		},
	}

	spans := []token.EntitySpan{
		{Start: 2, End: 3, Type: token.EntityPerson, Text: "John", Confidence: 1.0},
		{Start: 2, End: 3, Type: token.EntityUnknown, Text: "john", Confidence: 0.5},
		{Start: 8, End: 9, Type: token.EntityPlace, Text: "Camelot", Confidence: 1.0},
	}

	res := Extract(cl, spans)

	// in-clause only, deduplicated by surface text, first wins
	if len(res.Entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(res.Entities))
	}

	if res.Entities[0].Type != token.EntityPerson {
		t.Errorf("expected first type to win, got %s", res.Entities[0].Type)
	}
}

func TestExtractPrepositionCasingNormalized(t *testing.T) {
	// a sentence-initial preposition keeps its surface-cased lemma in
	// the stream; role extraction normalizes it
	at := tok(0, "At", token.PosAdp, token.DepPrep, -1)
	at.Lemma = "At"

	cl := Clause{
		Conj: -1,
		Tokens: token.Stream{
			at,
			tok(1, "dawn", token.PosNoun, token.DepPobj, 0),
		},
	}

	res := Extract(cl, nil)

	if len(res.PrepPhrases) != 1 || res.PrepPhrases[0].Prep != "at" {
		t.Fatalf("expected prep phrase (at, dawn), got %v", res.PrepPhrases)
	}

	if len(res.Prepositions) != 1 || res.Prepositions[0] != "at" {
		t.Errorf("expected prepositions [at], got %v", res.Prepositions)
	}
}

func TestExtractIgnoresPobjWithForeignHead(t *testing.T) {
	// head outside the clause: annotator imprecision degrades to no pair
	cl := Clause{
		Conj: -1,
		Tokens: token.Stream{
			tok(4, "ball", token.PosNoun, token.DepPobj, 1),
		},
	}

	res := Extract(cl, nil)

	if len(res.PrepPhrases) != 0 {
		t.Errorf("expected no prep phrases, got %v", res.PrepPhrases)
	}
}
