package intent

import (
	"testing"

	"github.com/questline/parley/annotate"
)

func parseText(t *testing.T, text string) Command {
	t.Helper()

	stream, spans, err := annotate.New().Annotate(text)
	if err != nil {
		t.Fatalf("annotate %q: %v", text, err)
	}

	return NewPipeline().Parse(stream, spans)
}

func TestParseSimpleCommand(t *testing.T) {
	cmd := parseText(t, "take the sword")

	if cmd.Action != "take" {
		t.Errorf("expected action %q, got %q", "take", cmd.Action)
	}

	if cmd.Target != "sword" {
		t.Errorf("expected target %q, got %q", "sword", cmd.Target)
	}

	if cmd.Subject != "player" {
		t.Errorf("expected subject %q, got %q", "player", cmd.Subject)
	}
}

func TestParseConjoinedClausesWithPronoun(t *testing.T) {
	cmd := parseText(t, "take the ball and kick it at the window")

	if cmd.Action != "take" {
		t.Errorf("expected action %q, got %q", "take", cmd.Action)
	}

	if cmd.Target != "ball" {
		t.Errorf("expected target %q, got %q", "ball", cmd.Target)
	}

	if cmd.Modifier != "window" {
		t.Errorf("expected modifier %q, got %q", "window", cmd.Modifier)
	}

	want := []string{"take", "kick"}
	if len(cmd.Verbs) != len(want) || cmd.Verbs[0] != want[0] || cmd.Verbs[1] != want[1] {
		t.Errorf("expected verbs %v, got %v", want, cmd.Verbs)
	}

	if len(cmd.Prepositions) != 1 || cmd.Prepositions[0] != "at" {
		t.Errorf("expected prepositions [at], got %v", cmd.Prepositions)
	}
}

func TestParsePlacement(t *testing.T) {
	cmd := parseText(t, "put the book on the table")

	if cmd.Action != "put" || cmd.Target != "book" || cmd.Modifier != "table" {
		t.Errorf("expected put/book/table, got %s/%s/%s", cmd.Action, cmd.Target, cmd.Modifier)
	}

	if len(cmd.Prepositions) != 1 || cmd.Prepositions[0] != "on" {
		t.Errorf("expected prepositions [on], got %v", cmd.Prepositions)
	}
}

func TestParseBareAdverbial(t *testing.T) {
	cmd := parseText(t, "look around")

	if cmd.Action != "look" {
		t.Errorf("expected action %q, got %q", "look", cmd.Action)
	}

	if cmd.Target != "" {
		t.Errorf("expected no target, got %q", cmd.Target)
	}

	if len(cmd.Prepositions) != 1 || cmd.Prepositions[0] != "around" {
		t.Errorf("expected prepositions [around], got %v", cmd.Prepositions)
	}
}

func TestParseConversation(t *testing.T) {
	cmd := parseText(t, "talk to John about the quest")

	if cmd.Action != "talk" {
		t.Errorf("expected action %q, got %q", "talk", cmd.Action)
	}

	if cmd.Target != "" {
		t.Errorf("expected no target, got %q", cmd.Target)
	}

	if cmd.Modifier != "John" {
		t.Errorf("expected modifier %q, got %q", "John", cmd.Modifier)
	}

	if len(cmd.Prepositions) != 2 || cmd.Prepositions[0] != "to" || cmd.Prepositions[1] != "about" {
		t.Errorf("expected prepositions [to about], got %v", cmd.Prepositions)
	}

	if len(cmd.Entities) != 1 || cmd.Entities[0].Text != "John" {
		t.Fatalf("expected entity John, got %v", cmd.Entities)
	}

	if string(cmd.Entities[0].Type) != "person" {
		t.Errorf("expected entity type person, got %s", cmd.Entities[0].Type)
	}
}

func TestParseStripsWrapper(t *testing.T) {
	cmd := parseText(t, "I want to look at the ball")

	if cmd.Action != "look" {
		t.Errorf("expected action %q, got %q", "look", cmd.Action)
	}

	if cmd.Target != "ball" {
		t.Errorf("expected target %q, got %q", "ball", cmd.Target)
	}
}

func TestParseThenSegmentation(t *testing.T) {
	cmd := parseText(t, "open the door then enter the room")

	want := []string{"open", "enter"}
	if len(cmd.Verbs) != len(want) || cmd.Verbs[0] != want[0] || cmd.Verbs[1] != want[1] {
		t.Errorf("expected verbs %v, got %v", want, cmd.Verbs)
	}

	if cmd.Target != "door" {
		t.Errorf("expected target %q, got %q", "door", cmd.Target)
	}

	if cmd.Modifier != "room" {
		t.Errorf("expected modifier %q, got %q", "room", cmd.Modifier)
	}
}

func TestParseRoundTripStable(t *testing.T) {
	for _, text := range []string{
		"take the sword",
		"open the door",
	} {
		first := parseText(t, text)
		if first.Target == "" {
			t.Fatalf("expected a target for %q", text)
		}

		// re-parsing the command's own essence yields the same record
		second := parseText(t, first.Action+" "+first.Target)

		if second.Action != first.Action || second.Target != first.Target || second.Modifier != first.Modifier {
			t.Errorf("re-parse of %q diverged: %s/%s/%s vs %s/%s/%s", text,
				second.Action, second.Target, second.Modifier,
				first.Action, first.Target, first.Modifier)
		}
	}
}

func TestParsePronounWithoutAntecedent(t *testing.T) {
	cmd := parseText(t, "take it")

	if cmd.Action != "take" {
		t.Errorf("expected action %q, got %q", "take", cmd.Action)
	}

	if cmd.Target != "" {
		t.Errorf("expected no target for an unresolvable pronoun, got %q", cmd.Target)
	}
}
