package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/questline/parley/intent"
)

const DefaultFormat = "human"

var (
	Green256  = "\033[1;38;5;70m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Off       = "\033[0m"
)

func SupportedFormats() []string {
	return []string{"human", "json", "contract"}
}

// Renderer writes parsed commands in one of the supported formats.
//
// human: key-value text
// json: the full command record
// contract: the stable machine-readable form for integrations
type Renderer struct {
	HasColor bool

	Format string
}

func NewRenderer() *Renderer {
	return &Renderer{Format: DefaultFormat}
}

// Command renders cmd to w in the current format.
func (r *Renderer) Command(w io.Writer, cmd intent.Command) error {
	switch r.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cmd)
	case "contract":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Contract(cmd))
	default:
		return r.human(w, cmd)
	}
}

func (r *Renderer) human(w io.Writer, cmd intent.Command) error {
	var str strings.Builder

	fmt.Fprintf(&str, "Input: %q\n", cmd.Text)
	fmt.Fprintf(&str, "Action: %s\n", r.color(orNone(cmd.Action), Green256))
	fmt.Fprintf(&str, "Target: %s\n", orNone(cmd.Target))
	fmt.Fprintf(&str, "Modifier: %s\n", orNone(cmd.Modifier))
	fmt.Fprintf(&str, "Subject: %s\n", cmd.Subject)
	fmt.Fprintf(&str, "Verbs: %s\n", orNone(strings.Join(cmd.Verbs, ", ")))
	fmt.Fprintf(&str, "Prepositions: %s\n", orNone(strings.Join(cmd.Prepositions, ", ")))

	if len(cmd.Entities) > 0 {
		fmt.Fprintf(&str, "Entities:\n")
		for _, e := range cmd.Entities {
			fmt.Fprintf(&str, "  %s (%s) confidence: %.3f\n",
				r.color(e.Text, Yellow256), e.Type, e.Confidence)
		}
	}

	_, err := io.WriteString(w, str.String())
	return err
}

func (r *Renderer) color(s, code string) string {
	if !r.HasColor || s == "none" {
		return s
	}

	return code + s + Off
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}

	return s
}

// NextFormat cycles the Format option, following the
// SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}
