// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/taml-html/pkg/view"
)

// Renderer writes the text content of rendered markup
type Renderer struct {
	output io.Writer
	view   *view.View
	props  view.Props
}

// New creates a new text renderer
func New(output io.Writer, v *view.View, props view.Props) *Renderer {
	return &Renderer{output: output, view: v, props: props}
}

// RenderMarkup writes the markup with its tags stripped
func (r *Renderer) RenderMarkup(markup string) error {
	props := r.props
	props.Markup = markup
	out, renderErr := r.view.RenderWithError(props)

	if !out.IsNothing() {
		if _, err := fmt.Fprintln(r.output, out.TextContent()); err != nil {
			return err
		}
	}
	return renderErr
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// Close is a no-op for text output
func (r *Renderer) Close() error {
	return nil
}
