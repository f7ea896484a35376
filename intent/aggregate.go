package intent

import "strings"

// DefaultSubject is the implicit actor of a command with no explicit
// subject token.
const DefaultSubject = "player"

// Command is the final structured intent record of one parsed
// command. Built once by Aggregate, never mutated afterwards.
type Command struct {
	Text string `json:"text"`

	Action   string `json:"action"`
	Target   string `json:"target"`
	Modifier string `json:"modifier"`
	Subject  string `json:"subject"`

	Verbs        []string `json:"verbs"`
	Prepositions []string `json:"prepositions"`
	Entities     []Entity `json:"entities"`
}

// Aggregate merges the resolved clause results into the final
// command record.
//
// Target/modifier precedence: the first direct object (clauses in
// order) is the target. Without any direct object, a lone
// prepositional object across the whole command is promoted to
// target ("look at the ball" after wrapper stripping); with several
// prepositional objects the target stays empty and the first becomes
// the modifier ("talk to John about the quest"). The modifier is
// otherwise the first concrete noun distinct from the target,
// scanning direct objects before prepositional objects per clause.
func Aggregate(results []ClauseResult) Command {
	cmd := Command{Subject: DefaultSubject}

	for _, res := range results {
		if res.Verb != "" {
			cmd.Verbs = append(cmd.Verbs, res.Verb)
		}

		if cmd.Subject == DefaultSubject && res.Subject != "" {
			cmd.Subject = res.Subject
		}

		for _, prep := range res.Prepositions {
			cmd.Prepositions = appendUnique(cmd.Prepositions, prep)
		}

		cmd.Entities = mergeEntities(cmd.Entities, res.Entities)
	}

	if len(cmd.Verbs) > 0 {
		cmd.Action = cmd.Verbs[0]
	}

	target, targetIndex := pickTarget(results)
	cmd.Target = target
	cmd.Modifier = pickModifier(results, target, targetIndex)

	return cmd
}

// pickTarget returns the target lemma and the stream index of the
// chosen object, -1 when no target exists.
func pickTarget(results []ClauseResult) (string, int) {
	for _, res := range results {
		if res.DirectObject != nil {
			return res.DirectObject.Lemma, res.DirectObject.Index
		}
	}

	// lone prepositional object promotion
	var lone *Object
	count := 0
	for i := range results {
		for j := range results[i].PrepPhrases {
			count++
			if count == 1 {
				lone = &results[i].PrepPhrases[j].Object
			}
		}
	}

	if count == 1 {
		return lone.Lemma, lone.Index
	}

	return "", -1
}

func pickModifier(results []ClauseResult, target string, targetIndex int) string {
	for _, res := range results {
		if obj := res.DirectObject; obj != nil && distinct(obj, target, targetIndex) {
			return obj.Lemma
		}

		for i := range res.PrepPhrases {
			if obj := &res.PrepPhrases[i].Object; distinct(obj, target, targetIndex) {
				return obj.Lemma
			}
		}
	}

	return ""
}

func distinct(obj *Object, target string, targetIndex int) bool {
	return obj.Index != targetIndex && obj.Lemma != target
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}

	return append(list, s)
}

// mergeEntities unions clause entities into the command set,
// deduplicated by surface text; the first seen type wins.
func mergeEntities(into, add []Entity) []Entity {
ENTITY:
	for _, e := range add {
		for _, have := range into {
			if strings.EqualFold(have.Text, e.Text) {
				continue ENTITY
			}
		}

		into = append(into, e)
	}

	return into
}
