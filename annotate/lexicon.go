package annotate

import "sort"

// The tagging heuristics are driven by explicit word tables rather
// than inline conditionals, so the rule set can be tested and
// extended independently of the tagger control flow.

// determiners are always DET except the demonstratives, which fall
// back to PRON when no noun phrase follows.
var determiners = map[string]bool{
	"the": true, "a": true, "an": true, "some": true, "any": true,
	"my": true, "your": true, "his": true, "her": true, "its": true,
	"our": true, "their": true, "every": true, "each": true,
	"this": true, "that": true, "these": true, "those": true,
}

// demonstratives may stand alone as pronouns ("kick that").
var demonstratives = map[string]bool{
	"this": true, "that": true, "these": true, "those": true,
}

var pronouns = map[string]bool{
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "me": true, "him": true, "them": true,
	"us": true, "this": true, "that": true, "these": true,
	"those": true, "everything": true, "something": true,
	"anything": true, "himself": true, "herself": true, "itself": true,
}

// subjectPronouns license a following verb ("i want", "you see").
var subjectPronouns = map[string]bool{
	"i": true, "you": true, "we": true, "he": true, "she": true,
	"they": true,
}

var prepositions = map[string]bool{
	"at": true, "on": true, "in": true, "to": true, "about": true,
	"with": true, "into": true, "onto": true, "from": true, "of": true,
	"for": true, "toward": true, "towards": true, "upon": true,
	"beside": true, "between": true, "against": true, "without": true,
}

// adverbOrPrep words act as a preposition when a noun phrase follows
// ("go around the tree") and as a bare particle otherwise
// ("look around").
var adverbOrPrep = map[string]bool{
	"around": true, "behind": true, "under": true, "over": true,
	"through": true, "across": true, "inside": true, "outside": true,
	"near": true, "past": true, "off": true, "up": true, "down": true,
	"along": true, "beneath": true,
}

var adverbs = map[string]bool{
	"away": true, "back": true, "here": true, "there": true,
	"everywhere": true, "now": true, "again": true, "then": true,
	"carefully": true, "quickly": true, "quietly": true,
}

var conjunctions = map[string]bool{
	"and": true, "or": true, "but": true,
}

var interjections = map[string]bool{
	"please": true, "ok": true, "okay": true, "well": true,
}

// verbs is the open-class verb lexicon for positions where the
// imperative heuristics alone cannot decide (after a subject pronoun
// or an infinitive marker). Clause-initial words are tagged VERB
// regardless of this table.
var verbs = map[string]bool{
	"take": true, "get": true, "grab": true, "pick": true, "put": true,
	"place": true, "drop": true, "look": true, "examine": true,
	"inspect": true, "open": true, "close": true, "go": true,
	"walk": true, "run": true, "climb": true, "kick": true,
	"throw": true, "push": true, "pull": true, "talk": true,
	"speak": true, "say": true, "ask": true, "tell": true,
	"give": true, "show": true, "use": true, "read": true,
	"eat": true, "drink": true, "wear": true, "remove": true,
	"unlock": true, "lock": true, "light": true, "search": true,
	"attack": true, "hit": true, "fight": true, "buy": true,
	"sell": true, "move": true, "turn": true, "enter": true,
	"leave": true, "wait": true, "listen": true, "smell": true,
	"touch": true, "break": true, "fix": true, "find": true,
	"follow": true, "help": true, "want": true, "need": true,
	"like": true, "try": true, "going": true, "gonna": true,
	"would": true, "wish": true, "see": true,
}

// irregularLemmas maps inflected forms the suffix rules cannot
// handle to their base form.
var irregularLemmas = map[string]string{
	"took":     "take",
	"taken":    "take",
	"got":      "get",
	"gave":     "give",
	"went":     "go",
	"saw":      "see",
	"said":     "say",
	"told":     "tell",
	"threw":    "throw",
	"broke":    "break",
	"found":    "find",
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"mice":     "mouse",
	"feet":     "foot",
	"knives":   "knife",
}

// Verbs returns the verb lexicon sorted, for completion surfaces.
func Verbs() []string {
	return sortedKeys(verbs)
}

// Prepositions returns the preposition table sorted, for completion
// surfaces.
func Prepositions() []string {
	keys := make([]string, 0, len(prepositions)+len(adverbOrPrep))
	for w := range prepositions {
		keys = append(keys, w)
	}
	for w := range adverbOrPrep {
		keys = append(keys, w)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for w := range m {
		keys = append(keys, w)
	}
	sort.Strings(keys)
	return keys
}
