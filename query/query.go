// Package query implements the interactive mode: a prompt loop that
// feeds commands through the annotation and intent pipeline, with
// per-command resolver state reset.
package query

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/questline/parley/annotate"
	"github.com/questline/parley/intent"
	"github.com/questline/parley/render"
	"github.com/questline/parley/storage"

	"github.com/c-bata/go-prompt"
)

type Handler struct {
	Annotator *annotate.Annotator
	Pipeline  *intent.Pipeline
	Renderer  *render.Renderer

	// History is optional; nil disables persistence.
	History storage.HistoryWriter
}

func NewHandler(a *annotate.Annotator, p *intent.Pipeline, r *render.Renderer) *Handler {
	return &Handler{
		Annotator: a,
		Pipeline:  p,
		Renderer:  r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+F: next Format, 🔧 quit")

	verbs := annotate.Verbs()
	preps := annotate.Prepositions()

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🗡  ", h.completer(verbs, preps),
			prompt.OptionTitle("parley"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
		)

		if in == "quit" || in == "exit" {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		stream, spans, err := h.Annotator.Annotate(in)
		if err != nil {
			fmt.Printf("Error annotating %q: %v\n", in, err)
			continue
		}

		cmd := h.Pipeline.Parse(stream, spans)
		cmd.Text = in

		if err := h.Renderer.Command(os.Stdout, cmd); err != nil {
			fmt.Printf("Error rendering: %v\n", err)
			continue
		}

		if h.History != nil {
			rec := storage.Record{
				Text:      in,
				Command:   cmd,
				CreatedAt: time.Now().UTC(),
			}
			if err := h.History.Append(rec); err != nil {
				fmt.Printf("Error writing history: %v\n", err)
			}
		}
	}
}

// completer suggests verbs for the first word of the command and
// prepositions afterwards.
func (h *Handler) completer(verbs, preps []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		word := in.GetWordBeforeCursor()
		if word == "" {
			return s
		}

		candidates := preps
		description := "preposition"
		if !strings.Contains(strings.TrimSpace(befCursor), " ") {
			candidates = verbs
			description = "verb"
		}

		for _, c := range candidates {
			if strings.HasPrefix(c, strings.ToLower(word)) {
				s = append(s, prompt.Suggest{Text: c, Description: description})
			}
		}

		return s
	}
}
