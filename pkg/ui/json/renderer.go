// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/parser"
	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/beevik/etree"
)

// Node is one rendered token
type Node struct {
	Type     string `json:"type"`
	Tag      string `json:"tag,omitempty"`
	Class    string `json:"class,omitempty"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// ErrorInfo describes a parse failure
type ErrorInfo struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// Document is the JSON object written per markup source
type Document struct {
	State string     `json:"state"`
	Error *ErrorInfo `json:"error,omitempty"`
	Nodes []Node     `json:"nodes"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
	view    *view.View
	props   view.Props
}

// New creates a new JSON renderer
func New(output io.Writer, v *view.View, props view.Props) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
		view:    v,
		props:   props,
	}
}

// RenderMarkup encodes the rendered tree of markup
func (r *Renderer) RenderMarkup(markup string) error {
	props := r.props
	props.Markup = markup

	var perr *parser.ParseError
	onError := props.OnError
	props.OnError = func(err *parser.ParseError) {
		perr = err
		if onError != nil {
			onError(err)
		}
	}

	out, state := r.view.RenderState(props)
	doc := Document{
		State: state.String(),
		Nodes: Convert(out),
	}
	if perr != nil {
		doc.Error = &ErrorInfo{Message: perr.Message, Line: perr.Line, Column: perr.Column}
	}

	if err := r.encoder.Encode(doc); err != nil {
		return err
	}
	if perr != nil {
		return errors.Wrap(perr, errors.ErrParse, "invalid markup")
	}
	return nil
}

// Convert maps a rendered fragment to JSON nodes
func Convert(out render.Output) []Node {
	nodes := make([]Node, 0, len(out))
	for _, tok := range out {
		if n, ok := convertToken(tok); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func convertToken(tok etree.Token) (Node, bool) {
	switch t := tok.(type) {
	case *etree.CharData:
		return Node{Type: "text", Text: t.Data}, true
	case *etree.Element:
		n := Node{
			Type:  "element",
			Tag:   t.SelectAttrValue(render.TagAttr, ""),
			Class: t.SelectAttrValue("class", ""),
			Title: t.SelectAttrValue("title", ""),
		}
		for _, c := range t.Child {
			if child, ok := convertToken(c); ok {
				n.Children = append(n.Children, child)
			}
		}
		return n, true
	default:
		return Node{}, false
	}
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	return r.encoder.Encode(errorObj)
}

// Close is a no-op for JSON output
func (r *Renderer) Close() error {
	return nil
}
