// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/taml-html/pkg/ast"
	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes rendered markup as ANSI-styled text
type Renderer struct {
	output   io.Writer
	view     *view.View
	props    view.Props
	theme    *style.Theme
	renderer *lipgloss.Renderer
}

// New creates a terminal renderer. The color profile is detected from
// output.
func New(output io.Writer, v *view.View, props view.Props, theme *style.Theme) *Renderer {
	return NewWithRenderer(output, v, props, theme, lipgloss.NewRenderer(output))
}

// NewWithRenderer creates a terminal renderer using a preconfigured lipgloss
// renderer
func NewWithRenderer(output io.Writer, v *view.View, props view.Props, theme *style.Theme, lr *lipgloss.Renderer) *Renderer {
	return &Renderer{
		output:   output,
		view:     v,
		props:    props,
		theme:    theme,
		renderer: lr,
	}
}

// RenderMarkup writes markup with terminal styling
func (r *Renderer) RenderMarkup(markup string) error {
	props := r.props
	props.Markup = markup
	out, renderErr := r.view.RenderWithError(props)

	if !out.IsNothing() {
		if _, err := fmt.Fprintln(r.output, r.Format(out)); err != nil {
			return err
		}
	}
	return renderErr
}

// Format converts a rendered fragment to styled text
func (r *Renderer) Format(out render.Output) string {
	var b strings.Builder
	base := r.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	for _, tok := range out {
		r.writeToken(&b, tok, base)
	}
	return b.String()
}

func (r *Renderer) writeToken(b *strings.Builder, tok etree.Token, outer lipgloss.Style) {
	switch t := tok.(type) {
	case *etree.CharData:
		writeStyled(b, outer, t.Data)

	case *etree.Element:
		current := outer
		if tag := t.SelectAttrValue(render.TagAttr, ""); tag != "" {
			current = r.theme.Style(r.renderer, ast.Tag(tag)).Inherit(outer)
		} else if hasClass(t, style.ErrorClass) {
			current = r.theme.Style(r.renderer, ast.Red).Bold(true).Inherit(outer)
		}

		for _, c := range t.Child {
			r.writeToken(b, c, current)
		}

		if title := t.SelectAttrValue("title", ""); title != "" && hasClass(t, style.ErrorClass) {
			writeStyled(b, current.Bold(false).Faint(true), " "+strings.TrimPrefix(title, view.PlaceholderTitlePrefix))
		}
	}
}

// writeStyled styles each line on its own so lipgloss does not pad lines
// to a common width
func writeStyled(b *strings.Builder, s lipgloss.Style, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		b.WriteString(s.Render(line))
	}
}

func hasClass(el *etree.Element, class string) bool {
	for _, c := range strings.Fields(el.SelectAttrValue("class", "")) {
		if c == class {
			return true
		}
	}
	return false
}

// RenderError renders an error in red on the output
func (r *Renderer) RenderError(err error) error {
	s := r.theme.Style(r.renderer, ast.Red).Bold(true)
	_, werr := fmt.Fprintln(r.output, s.Render("Error:")+" "+err.Error())
	return werr
}

// Close is a no-op for terminal output
func (r *Renderer) Close() error {
	return nil
}
