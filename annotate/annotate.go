// Package annotate produces annotated token streams for short
// English text-adventure commands. It is a rule-based stand-in for a
// full linguistic annotator: a regexp tokenizer, lexicon plus
// positional POS tagging tuned for imperatives, a shallow dependency
// pass and gazetteer named-entity recognition.
//
// The intent pipeline consumes the output but tolerates annotation
// imprecision, so the tagger prefers a wrong-but-plausible tag over
// failing.
package annotate

import (
	"bufio"
	"embed"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/questline/parley/token"
)

// ErrEmptyInput is returned when the input contains no words.
var ErrEmptyInput = errors.New("annotate: empty input")

//go:embed data/gazetteer.txt
var dataFiles embed.FS

// reToken splits text into words or numbers, preserving internal
// apostrophes.
var reToken = regexp.MustCompile(`[’']?[\pL]+[’']?|\pN+`)

// maxSpanTokens bounds gazetteer lookups for multi-word entries.
const maxSpanTokens = 3

type gazetteerEntry struct {
	words []string
	typ   token.EntityType
}

// Annotator turns a command string into a token stream plus entity
// spans. The zero value is not usable; construct with New.
type Annotator struct {
	gazetteer []gazetteerEntry
}

func New() *Annotator {
	return &Annotator{gazetteer: loadGazetteer()}
}

func loadGazetteer() []gazetteerEntry {
	f, err := dataFiles.Open("data/gazetteer.txt")
	if err != nil {
		// the file is embedded, absence is a build defect
		panic(err)
	}
	defer f.Close()

	var entries []gazetteerEntry
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		surface, typ, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}

		entries = append(entries, gazetteerEntry{
			words: strings.Fields(strings.ToLower(surface)),
			typ:   token.EntityType(typ),
		})
	}

	return entries
}

// Annotate produces the annotated stream and entity spans for text.
// The only error is ErrEmptyInput; everything else degrades to
// partial annotations.
func (a *Annotator) Annotate(text string) (token.Stream, []token.EntitySpan, error) {
	words, offsets := tokenize(text)
	if len(words) == 0 {
		return nil, nil, ErrEmptyInput
	}

	stream := make(token.Stream, len(words))
	for i, w := range words {
		stream[i] = token.Token{
			Index: i,
			Idx:   offsets[i],
			Text:  w,
			Lemma: lemma(w),
			Head:  -1,
		}
	}

	tagStream(stream)

	// proper nouns keep their surface form as lemma
	for i := range stream {
		if stream[i].Pos == token.PosPropn {
			stream[i].Lemma = stream[i].Text
		}
	}

	attachHeads(stream)
	spans := a.entitySpans(stream)

	return stream, spans, nil
}

// tokenize returns the word tokens of text and the rune offset of
// each word.
func tokenize(text string) ([]string, []int) {
	locs := reToken.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil, nil
	}

	words := make([]string, 0, len(locs))
	offsets := make([]int, 0, len(locs))
	for _, loc := range locs {
		words = append(words, text[loc[0]:loc[1]])
		offsets = append(offsets, len([]rune(text[:loc[0]])))
	}

	return words, offsets
}

// lemma lowercases and reduces plural/inflection suffixes. The
// irregular table wins over the suffix rules.
func lemma(word string) string {
	w := strings.ToLower(word)
	if base, ok := irregularLemmas[w]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(w, "sses"):
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return strings.TrimSuffix(w, "ies") + "y"
	case strings.HasSuffix(w, "s") && len(w) > 3 &&
		!strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") &&
		!strings.HasSuffix(w, "is"):
		return strings.TrimSuffix(w, "s")
	}

	return w
}

// tagStream assigns a coarse POS tag to every token. Closed classes
// come from the word tables; open-class words rely on imperative
// position heuristics: the first word of a clause is a verb, a word
// after a subject pronoun or infinitive marker is a verb when the
// verb lexicon knows it, capitalized words are proper nouns,
// everything else is a noun.
func tagStream(stream token.Stream) {
	for i := range stream {
		stream[i].Pos = tag(stream, i)
		stream[i].Tag = stream[i].Pos
	}
}

func tag(stream token.Stream, i int) string {
	w := strings.ToLower(stream[i].Text)

	switch {
	case conjunctions[w]:
		return token.PosCconj

	case interjections[w]:
		return token.PosIntj

	case demonstratives[w]:
		// "take that sword" vs "kick that"
		if nounFollows(stream, i) {
			return token.PosDet
		}
		return token.PosPron

	case determiners[w]:
		return token.PosDet

	case pronouns[w]:
		return token.PosPron

	case prepositions[w]:
		return token.PosAdp

	case adverbOrPrep[w]:
		// preposition only with an object ("go around the tree"),
		// particle otherwise ("look around")
		if nounFollows(stream, i) {
			return token.PosAdp
		}
		return token.PosAdv

	case adverbs[w]:
		return token.PosAdv
	}

	// open class: imperative position heuristics
	prev := ""
	prevPos := ""
	if i > 0 {
		prev = strings.ToLower(stream[i-1].Text)
		prevPos = stream[i-1].Pos
	}

	switch {
	// "then" opens a clause the same way a conjunction does
	case i == 0, prevPos == token.PosCconj, interjections[prev], prev == "then":
		return token.PosVerb
	case verbs[w] && (subjectPronouns[prev] || prev == "to"):
		return token.PosVerb
	}

	if unicode.IsUpper([]rune(stream[i].Text)[0]) {
		return token.PosPropn
	}

	return token.PosNoun
}

// nounFollows reports whether the next significant token after i
// starts a noun phrase.
func nounFollows(stream token.Stream, i int) bool {
	for j := i + 1; j < len(stream); j++ {
		w := strings.ToLower(stream[j].Text)

		if demonstratives[w] {
			continue
		}
		if determiners[w] {
			return true
		}
		if conjunctions[w] || prepositions[w] || adverbOrPrep[w] ||
			adverbs[w] || pronouns[w] || interjections[w] {
			return false
		}

		// open-class word: a noun phrase head unless position makes
		// it a verb, which cannot happen directly after i
		return true
	}

	return false
}

// attachHeads runs the shallow dependency pass. Attachment is
// strictly left to right against the nearest preceding verb; a
// pending preposition captures the next noun phrase head as its
// object.
func attachHeads(stream token.Stream) {
	lastVerb := -1
	lastPrep := -1

	for i := range stream {
		switch stream[i].Category() {
		case token.Verb:
			if lastVerb == -1 {
				stream[i].Dep = token.DepRoot
				stream[i].Head = -1
			} else {
				stream[i].Dep = token.DepConj
				stream[i].Head = lastVerb
			}
			lastVerb = i
			lastPrep = -1

		case token.Determiner:
			stream[i].Dep = token.DepDet
			stream[i].Head = nextNominal(stream, i)

		case token.Preposition:
			stream[i].Dep = token.DepPrep
			stream[i].Head = lastVerb
			lastPrep = i

		case token.Adverb:
			stream[i].Dep = token.DepAdvmod
			stream[i].Head = lastVerb

		case token.Conjunction:
			stream[i].Dep = token.DepCc
			stream[i].Head = lastVerb

		case token.Noun:
			head, dep := nominalAttachment(stream, i, lastVerb, lastPrep)
			stream[i].Dep = dep
			stream[i].Head = head
			if dep != token.DepCompound {
				lastPrep = -1
			}

		case token.Pronoun:
			if lastVerb == -1 {
				stream[i].Dep = token.DepNsubj
				stream[i].Head = nextVerb(stream, i)
				continue
			}
			if lastPrep != -1 {
				stream[i].Dep = token.DepPobj
				stream[i].Head = lastPrep
				lastPrep = -1
			} else {
				stream[i].Dep = token.DepDobj
				stream[i].Head = lastVerb
			}

		default:
			stream[i].Dep = "dep"
			stream[i].Head = lastVerb
		}
	}
}

// nominalAttachment decides compound vs object role for a noun.
// "brass key" attaches brass to key; the final noun of the run takes
// the object role.
func nominalAttachment(stream token.Stream, i, lastVerb, lastPrep int) (head int, dep string) {
	if i+1 < len(stream) && stream[i+1].Category() == token.Noun {
		return i + 1, token.DepCompound
	}

	if lastPrep != -1 {
		return lastPrep, token.DepPobj
	}

	return lastVerb, token.DepDobj
}

func nextNominal(stream token.Stream, i int) int {
	for j := i + 1; j < len(stream); j++ {
		switch stream[j].Category() {
		case token.Noun, token.Pronoun:
			return j
		case token.Conjunction, token.Verb:
			return -1
		}
	}
	return -1
}

func nextVerb(stream token.Stream, i int) int {
	for j := i + 1; j < len(stream); j++ {
		if stream[j].Category() == token.Verb {
			return j
		}
	}
	return -1
}

// entitySpans recognizes gazetteer entries (longest match first) and
// falls back to treating unknown capitalized words as entities of
// unknown type with reduced confidence.
func (a *Annotator) entitySpans(stream token.Stream) []token.EntitySpan {
	var spans []token.EntitySpan
	covered := make([]bool, len(stream))

	for i := 0; i < len(stream); i++ {
		if covered[i] {
			continue
		}

		if span, n := a.matchGazetteer(stream, i); n > 0 {
			spans = append(spans, span)
			for j := i; j < i+n; j++ {
				covered[j] = true
			}
			i += n - 1
		}
	}

	// heuristic: a capitalized word past the command start is a name
	// the gazetteer does not know
	for i := 1; i < len(stream); i++ {
		if covered[i] || stream[i].Pos != token.PosPropn {
			continue
		}

		spans = append(spans, token.EntitySpan{
			Start:      i,
			End:        i + 1,
			Type:       token.EntityUnknown,
			Text:       stream[i].Text,
			Confidence: 0.5,
		})
	}

	return spans
}

func (a *Annotator) matchGazetteer(stream token.Stream, i int) (token.EntitySpan, int) {
	best := 0
	var bestType token.EntityType

	for _, entry := range a.gazetteer {
		n := len(entry.words)
		if n <= best || n > maxSpanTokens || i+n > len(stream) {
			continue
		}

		ok := true
		for j, w := range entry.words {
			if strings.ToLower(stream[i+j].Text) != w {
				ok = false
				break
			}
		}

		if ok {
			best = n
			bestType = entry.typ
		}
	}

	if best == 0 {
		return token.EntitySpan{}, 0
	}

	texts := make([]string, 0, best)
	for j := i; j < i+best; j++ {
		texts = append(texts, stream[j].Text)
	}

	return token.EntitySpan{
		Start:      i,
		End:        i + best,
		Type:       bestType,
		Text:       strings.Join(texts, " "),
		Confidence: 1.0,
	}, best
}
