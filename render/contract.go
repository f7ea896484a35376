package render

import "github.com/questline/parley/intent"

// ContractRecord is the machine-readable serialization for
// cross-system integration. Field names are stable; absent target
// and modifier serialize as null.
type ContractRecord struct {
	Action   string          `json:"action"`
	Subject  string          `json:"subject"`
	Target   *string         `json:"target"`
	Modifier *string         `json:"modifier"`
	Context  ContractContext `json:"context"`
}

type ContractContext struct {
	Prepositions []string         `json:"prepositions"`
	Entities     []ContractEntity `json:"entities"`
	Confidence   float64          `json:"confidence"`
}

type ContractEntity struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Contract converts a command record to the contract form. An empty
// action becomes "unknown"; the confidence is the minimum entity
// confidence, 1.0 without entities.
func Contract(cmd intent.Command) ContractRecord {
	rec := ContractRecord{
		Action:   cmd.Action,
		Subject:  cmd.Subject,
		Target:   optional(cmd.Target),
		Modifier: optional(cmd.Modifier),
		Context: ContractContext{
			Prepositions: cmd.Prepositions,
			Entities:     []ContractEntity{},
			Confidence:   1.0,
		},
	}

	if rec.Action == "" {
		rec.Action = "unknown"
	}

	if rec.Context.Prepositions == nil {
		rec.Context.Prepositions = []string{}
	}

	for _, e := range cmd.Entities {
		rec.Context.Entities = append(rec.Context.Entities, ContractEntity{
			Text: e.Text,
			Type: string(e.Type),
		})

		if e.Confidence < rec.Context.Confidence {
			rec.Context.Confidence = e.Confidence
		}
	}

	return rec
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
