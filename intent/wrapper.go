package intent

import (
	"strings"

	"github.com/questline/parley/token"
)

// Wrapper is one conversational filler pattern, matched against the
// leading lemmas of a stream.
type Wrapper []string

// DefaultWrappers is the versioned filler table. Strip always picks
// the longest match, so the order here is only for readability.
var DefaultWrappers = []Wrapper{
	{"i", "would", "like", "to"},
	{"i", "would", "like"},
	{"i", "want", "to"},
	{"i", "need", "to"},
	{"i", "am", "going", "to"},
	{"can", "you", "please"},
	{"could", "you", "please"},
	{"can", "you"},
	{"could", "you"},
	{"try", "to"},
	{"please"},
}

// Strip removes wrapper prefixes from the stream until none matches
// and returns the remaining suffix. Matches are anchored at position
// 0, case-insensitive on lemmas, longest pattern first; chained
// fillers ("can you try to take ...") are consumed in one call, so
// stripping a stripped stream changes nothing. A wrapper never
// swallows the whole command.
func Strip(stream token.Stream, wrappers []Wrapper) token.Stream {
	for {
		best := 0
		for _, w := range wrappers {
			if len(w) > best && matchesPrefix(stream, w) {
				best = len(w)
			}
		}

		if best == 0 {
			return stream
		}

		stream = stream[best:]
	}
}

func matchesPrefix(stream token.Stream, w Wrapper) bool {
	// at least one token must remain after stripping
	if len(stream) <= len(w) {
		return false
	}

	for i, word := range w {
		if strings.ToLower(stream[i].Lemma) != word {
			return false
		}
	}

	return true
}
