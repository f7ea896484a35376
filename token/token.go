package token

// Token represents a word of the command, with POS and metadata.
// Produced by the annotator (or unmarshaled from a pre-annotated
// stream) and immutable afterwards.
type Token struct {
	// Head is the Index of the head token, -1 for the root.
	Head int `json:"head"`

	// Coarse part-of-speech tag (universal tag set: VERB, NOUN, ADP, ...)
	Pos string `json:"pos"`

	// Dependency label (ROOT, dobj, pobj, prep, ...)
	Dep string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start rune of the token in the original text
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the stream, starting at 0.
	Index int `json:"index"`
}

// Stream is an ordered sequence of annotated tokens.
type Stream []Token

// Dependency labels used by the annotator and consumed by the
// intent pipeline. The names follow the spaCy English scheme so
// externally annotated streams need no translation.
const (
	DepRoot     = "ROOT"
	DepDet      = "det"
	DepDobj     = "dobj"
	DepPobj     = "pobj"
	DepPrep     = "prep"
	DepAdvmod   = "advmod"
	DepCc       = "cc"
	DepConj     = "conj"
	DepNsubj    = "nsubj"
	DepCompound = "compound"
)

// Coarse POS tags (universal tag set subset).
const (
	PosVerb  = "VERB"
	PosNoun  = "NOUN"
	PosPropn = "PROPN"
	PosAdp   = "ADP"
	PosPron  = "PRON"
	PosDet   = "DET"
	PosCconj = "CCONJ"
	PosAdv   = "ADV"
	PosIntj  = "INTJ"
	PosX     = "X"
)

// Category is the tagged-variant view of a token's POS used by the
// intent pipeline. Matching on Category instead of raw tag strings
// keeps the role extraction exhaustive.
type Category int

const (
	Other Category = iota
	Verb
	Noun
	Preposition
	Pronoun
	Conjunction
	Determiner
	Adverb
)

// Category maps the coarse POS tag to its variant. Unknown tags
// degrade to Other, never fail.
func (t Token) Category() Category {
	switch t.Pos {
	case PosVerb:
		return Verb
	case PosNoun, PosPropn:
		return Noun
	case PosAdp:
		return Preposition
	case PosPron:
		return Pronoun
	case PosCconj:
		return Conjunction
	case PosDet:
		return Determiner
	case PosAdv:
		return Adverb
	default:
		return Other
	}
}

// IsNoun reports whether the token can act as a concrete noun
// phrase head (common or proper noun).
func (t Token) IsNoun() bool {
	return t.Category() == Noun
}
