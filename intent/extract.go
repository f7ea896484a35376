package intent

import (
	"strings"

	"github.com/questline/parley/token"
)

// Object is a noun-phrase head filling a role in a clause.
type Object struct {
	// Lemma is the head lemma (proper nouns keep their surface
	// form), determiners already excluded by the dependency
	// structure.
	Lemma string `json:"lemma"`

	// Index is the token index in the stream, used for ordering and
	// the no-forward-resolution guarantee.
	Index int `json:"index"`

	// Pronoun marks an unresolved placeholder awaiting the resolver.
	Pronoun bool `json:"pronoun,omitempty"`

	// Resolved marks a lemma substituted from resolver state. Such
	// objects are references, not fresh mentions.
	Resolved bool `json:"resolved,omitempty"`
}

// PrepPhrase pairs a preposition with its object noun.
type PrepPhrase struct {
	Prep   string `json:"prep"`
	Object Object `json:"object"`
}

// Entity is a recognized named entity inside a clause.
type Entity struct {
	Text       string           `json:"text"`
	Type       token.EntityType `json:"type"`
	Confidence float64          `json:"confidence"`
}

// ClauseResult holds the roles extracted from one clause. Immutable
// once the resolver has run over it.
type ClauseResult struct {
	Verb      string
	VerbIndex int

	Subject string

	DirectObject *Object
	PrepPhrases  []PrepPhrase

	// Prepositions is every preposition (and adverbial particle)
	// lemma of the clause in order, independent of whether an object
	// followed.
	Prepositions []string

	Entities []Entity
}

// Extract identifies the roles of a single clause. A clause without
// an identifiable verb still yields whatever objects the dependency
// structure supports; that case is a continuation, not an error.
func Extract(cl Clause, spans []token.EntitySpan) ClauseResult {
	res := ClauseResult{VerbIndex: -1}

	root := rootVerb(cl)
	if root >= 0 {
		t := clauseToken(cl, root)
		res.Verb = t.Lemma
		res.VerbIndex = root
	}

	for _, t := range cl.Tokens {
		switch {
		case t.Dep == token.DepNsubj && res.Subject == "":
			res.Subject = t.Lemma

		case t.Dep == token.DepDobj:
			if res.DirectObject == nil && (root < 0 || t.Head == root) {
				obj := newObject(t)
				res.DirectObject = &obj
			}

		case t.Dep == token.DepPobj:
			prep := prepFor(cl, t)
			if prep == "" {
				continue
			}
			res.PrepPhrases = append(res.PrepPhrases, PrepPhrase{
				Prep:   prep,
				Object: newObject(t),
			})

		case t.Category() == token.Preposition,
			t.Category() == token.Adverb && t.Dep == token.DepAdvmod:
			res.Prepositions = append(res.Prepositions, strings.ToLower(t.Lemma))
		}
	}

	res.Entities = clauseEntities(cl, spans)

	return res
}

func newObject(t token.Token) Object {
	return Object{
		Lemma:   t.Lemma,
		Index:   t.Index,
		Pronoun: t.Category() == token.Pronoun,
	}
}

// rootVerb returns the stream index of the clause's governing verb:
// the leftmost verb token with no verb ancestor inside the clause.
// Returns -1 for verbless (elliptical) clauses.
func rootVerb(cl Clause) int {
	for _, t := range cl.Tokens {
		if t.Category() != token.Verb {
			continue
		}

		if !verbAncestorInClause(cl, t) {
			return t.Index
		}
	}

	return -1
}

func verbAncestorInClause(cl Clause, t token.Token) bool {
	head := t.Head
	for steps := 0; steps < len(cl.Tokens); steps++ {
		ht := clauseToken(cl, head)
		if ht == nil {
			return false
		}

		if ht.Category() == token.Verb {
			return true
		}

		head = ht.Head
	}

	return false
}

// prepFor returns the lower-cased lemma of the preposition governing
// a pobj token, or "" when the head lies outside the clause or is
// not a preposition (annotator imprecision degrades to no pair).
func prepFor(cl Clause, t token.Token) string {
	ht := clauseToken(cl, t.Head)
	if ht == nil || ht.Category() != token.Preposition {
		return ""
	}

	return strings.ToLower(ht.Lemma)
}

// clauseToken resolves a stream index to the clause token carrying
// it, nil when the index falls outside the clause.
func clauseToken(cl Clause, index int) *token.Token {
	for i := range cl.Tokens {
		if cl.Tokens[i].Index == index {
			return &cl.Tokens[i]
		}
	}

	return nil
}

// clauseEntities copies every entity span contained in the clause,
// deduplicated by surface text.
func clauseEntities(cl Clause, spans []token.EntitySpan) []Entity {
	if len(cl.Tokens) == 0 {
		return nil
	}

	first := cl.Tokens[0].Index
	last := cl.Tokens[len(cl.Tokens)-1].Index

	var entities []Entity

SPAN:
	for _, span := range spans {
		if span.Start < first || span.End > last+1 {
			continue
		}

		for _, e := range entities {
			if strings.EqualFold(e.Text, span.Text) {
				continue SPAN
			}
		}

		entities = append(entities, Entity{
			Text:       span.Text,
			Type:       span.Type,
			Confidence: span.Confidence,
		})
	}

	return entities
}
