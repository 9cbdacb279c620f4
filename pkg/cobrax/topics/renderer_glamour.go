package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through unchanged, as does markdown glamour fails to render.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path to
	// a style file; "" and "auto" detect from the terminal
	Style string
	// Width wraps lines; 0 leaves wrapping to glamour
	Width int
}

// NewGlamourRenderer creates a markdown renderer with terminal detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var opts []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	return opts
}

// Render converts markdown to styled terminal output
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}

	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
