package stat

import (
	"github.com/questline/parley/intent"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumCommands int
	NumVerbs    int

	// VerbsPerCommandDis maps verb count to number of commands.
	VerbsPerCommandDis map[int]int

	Actions      map[string]int
	Prepositions map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		VerbsPerCommandDis: map[int]int{},
		Actions:            map[string]int{},
		Prepositions:       map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(cmd intent.Command) {
	h.stats.NumCommands++
	h.stats.NumVerbs += len(cmd.Verbs)
	h.stats.VerbsPerCommandDis[len(cmd.Verbs)]++

	if cmd.Action != "" {
		h.stats.Actions[cmd.Action]++
	}

	for _, prep := range cmd.Prepositions {
		h.stats.Prepositions[prep]++
	}
}

// VerbsPerCommandMean is the integer mean, 0 with no commands.
func (s Stats) VerbsPerCommandMean() int {
	if s.NumCommands == 0 {
		return 0
	}

	return s.NumVerbs / s.NumCommands
}
