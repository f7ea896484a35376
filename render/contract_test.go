package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/questline/parley/intent"
	"github.com/questline/parley/token"
)

func TestContractFields(t *testing.T) {
	cmd := sampleCommand()
	cmd.Entities = []intent.Entity{
		{Text: "John", Type: token.EntityPerson, Confidence: 1.0},
		{Text: "Grendel", Type: token.EntityUnknown, Confidence: 0.5},
	}

	rec := Contract(cmd)

	if rec.Action != "take" || rec.Subject != "player" {
		t.Errorf("expected take/player, got %s/%s", rec.Action, rec.Subject)
	}

	if rec.Target == nil || *rec.Target != "ball" {
		t.Errorf("expected target ball, got %v", rec.Target)
	}

	if len(rec.Context.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(rec.Context.Entities))
	}

	// minimum entity confidence
	if rec.Context.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %g", rec.Context.Confidence)
	}
}

func TestContractEmptyCommand(t *testing.T) {
	rec := Contract(intent.Command{Subject: "player"})

	if rec.Action != "unknown" {
		t.Errorf("expected action 'unknown', got %q", rec.Action)
	}

	if rec.Target != nil || rec.Modifier != nil {
		t.Errorf("expected null target and modifier, got %v/%v", rec.Target, rec.Modifier)
	}

	if rec.Context.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %g", rec.Context.Confidence)
	}
}

func TestContractSerialization(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer()
	r.Format = "contract"

	if err := r.Command(&buf, intent.Command{Action: "look", Subject: "player"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if string(raw["target"]) != "null" {
		t.Errorf("expected target serialized as null, got %s", raw["target"])
	}

	var ctx map[string]json.RawMessage
	if err := json.Unmarshal(raw["context"], &ctx); err != nil {
		t.Fatalf("failed to unmarshal context: %v", err)
	}

	if string(ctx["prepositions"]) != "[]" {
		t.Errorf("expected empty prepositions array, got %s", ctx["prepositions"])
	}

	if string(ctx["entities"]) != "[]" {
		t.Errorf("expected empty entities array, got %s", ctx["entities"])
	}
}
