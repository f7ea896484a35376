package token

// EntityType classifies a named-entity span.
type EntityType string

const (
	EntityPerson  EntityType = "person"
	EntityPlace   EntityType = "place"
	EntityObject  EntityType = "object"
	EntityUnknown EntityType = "unknown"
)

// EntitySpan is a named-entity annotation over a token range.
// Produced by the annotator; the intent pipeline only reads these.
type EntitySpan struct {
	// Start and End are token indices, End exclusive.
	Start int `json:"start"`
	End   int `json:"end"`

	Type EntityType `json:"type"`

	// The surface text of the span in the original command.
	Text string `json:"text"`

	// Confidence in [0,1]. Gazetteer hits are 1.0, heuristic
	// recognitions less.
	Confidence float64 `json:"confidence"`
}
