// Package html writes rendered markup as HTML fragments or pages
package html

import (
	"fmt"
	"io"

	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/beevik/etree"
)

// Page configures standalone output
type Page struct {
	// Standalone collects all fragments into one HTML document written on
	// Close
	Standalone bool
	// Title of the standalone page
	Title string
	// CSS is inlined in the page head
	CSS string
}

// Renderer writes HTML
type Renderer struct {
	output io.Writer
	view   *view.View
	props  view.Props
	page   Page
	doc    *etree.Document
	body   *etree.Element
}

// New creates an HTML renderer
func New(output io.Writer, v *view.View, props view.Props, page Page) *Renderer {
	r := &Renderer{
		output: output,
		view:   v,
		props:  props,
		page:   page,
	}
	if page.Standalone {
		r.doc, r.body = newPage(page)
	}
	return r
}

func newPage(page Page) (*etree.Document, *etree.Element) {
	title := page.Title
	if title == "" {
		title = "TAML"
	}

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalEndTags: true,
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.CreateDirective("DOCTYPE html")
	root := doc.CreateElement("html")
	head := root.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(title)
	if page.CSS != "" {
		head.CreateElement("style").SetText("\n" + page.CSS)
	}
	return doc, root.CreateElement("body")
}

// RenderMarkup renders markup through the view. Fragments are written
// immediately, one per line; standalone pages are written on Close.
func (r *Renderer) RenderMarkup(markup string) error {
	props := r.props
	props.Markup = markup
	out, renderErr := r.view.RenderWithError(props)

	if out.IsNothing() {
		return renderErr
	}

	if r.page.Standalone {
		out.AppendTo(r.body.CreateElement("div"))
		return renderErr
	}

	if _, err := fmt.Fprintln(r.output, out.HTML()); err != nil {
		return err
	}
	return renderErr
}

// RenderError writes the error as an HTML comment
func (r *Renderer) RenderError(err error) error {
	comment := render.Nodes(etree.NewComment(" error: " + err.Error() + " "))
	if r.page.Standalone {
		comment.AppendTo(r.body)
		return nil
	}
	_, werr := fmt.Fprintln(r.output, comment.HTML())
	return werr
}

// Close writes the standalone page, if any
func (r *Renderer) Close() error {
	if !r.page.Standalone {
		return nil
	}
	if _, err := r.doc.WriteTo(r.output); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.output)
	return err
}
