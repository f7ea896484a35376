package intent

import (
	"testing"

	"github.com/questline/parley/token"
)

func TestAggregateFirstDirectObjectWins(t *testing.T) {
	results := []ClauseResult{
		{Verb: "take", DirectObject: &Object{Lemma: "ball", Index: 2}},
		{Verb: "kick", DirectObject: &Object{Lemma: "can", Index: 6}},
	}

	cmd := Aggregate(results)

	if cmd.Action != "take" {
		t.Errorf("expected action %q, got %q", "take", cmd.Action)
	}

	if cmd.Target != "ball" {
		t.Errorf("expected target %q, got %q", "ball", cmd.Target)
	}

	if cmd.Modifier != "can" {
		t.Errorf("expected modifier %q, got %q", "can", cmd.Modifier)
	}

	if len(cmd.Verbs) != 2 {
		t.Errorf("expected 2 verbs, got %v", cmd.Verbs)
	}
}

func TestAggregateLonePrepObjectPromoted(t *testing.T) {
	results := []ClauseResult{
		{
			Verb: "look",
			PrepPhrases: []PrepPhrase{
				{Prep: "at", Object: Object{Lemma: "ball", Index: 3}},
			},
			Prepositions: []string{"at"},
		},
	}

	cmd := Aggregate(results)

	if cmd.Target != "ball" {
		t.Errorf("expected the lone prep object promoted to target, got %q", cmd.Target)
	}

	if cmd.Modifier != "" {
		t.Errorf("expected no modifier, got %q", cmd.Modifier)
	}
}

func TestAggregateSeveralPrepObjectsNoTarget(t *testing.T) {
	results := []ClauseResult{
		{
			Verb: "talk",
			PrepPhrases: []PrepPhrase{
				{Prep: "to", Object: Object{Lemma: "John", Index: 2}},
				{Prep: "about", Object: Object{Lemma: "quest", Index: 5}},
			},
			Prepositions: []string{"to", "about"},
		},
	}

	cmd := Aggregate(results)

	if cmd.Target != "" {
		t.Errorf("expected no target, got %q", cmd.Target)
	}

	if cmd.Modifier != "John" {
		t.Errorf("expected modifier %q, got %q", "John", cmd.Modifier)
	}
}

func TestAggregateDefaultSubject(t *testing.T) {
	cmd := Aggregate([]ClauseResult{{Verb: "look"}})

	if cmd.Subject != DefaultSubject {
		t.Errorf("expected subject %q, got %q", DefaultSubject, cmd.Subject)
	}
}

func TestAggregateExplicitSubject(t *testing.T) {
	results := []ClauseResult{
		{Verb: "wait"},
		{Verb: "attack", Subject: "you"},
	}

	cmd := Aggregate(results)

	if cmd.Subject != "you" {
		t.Errorf("expected the first explicit subject, got %q", cmd.Subject)
	}
}

func TestAggregateNoVerbs(t *testing.T) {
	cmd := Aggregate([]ClauseResult{{}})

	if cmd.Action != "" {
		t.Errorf("expected empty action, got %q", cmd.Action)
	}
}

func TestAggregatePrepositionsDeduplicated(t *testing.T) {
	results := []ClauseResult{
		{Verb: "look", Prepositions: []string{"at", "around"}},
		{Verb: "walk", Prepositions: []string{"around"}},
	}

	cmd := Aggregate(results)

	want := []string{"at", "around"}
	if len(cmd.Prepositions) != len(want) {
		t.Fatalf("expected prepositions %v, got %v", want, cmd.Prepositions)
	}
	for i, p := range want {
		if cmd.Prepositions[i] != p {
			t.Errorf("expected prepositions %v, got %v", want, cmd.Prepositions)
			break
		}
	}
}

func TestAggregateEntityFirstTypeWins(t *testing.T) {
	results := []ClauseResult{
		{Verb: "find", Entities: []Entity{{Text: "John", Type: token.EntityPerson, Confidence: 1.0}}},
		{Verb: "greet", Entities: []Entity{{Text: "john", Type: token.EntityUnknown, Confidence: 0.5}}},
	}

	cmd := Aggregate(results)

	if len(cmd.Entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(cmd.Entities))
	}

	if cmd.Entities[0].Type != token.EntityPerson {
		t.Errorf("expected the first seen type to win, got %s", cmd.Entities[0].Type)
	}
}
