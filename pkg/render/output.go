package render

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
)

// Output is a rendered fragment. nil means nothing was rendered.
type Output []etree.Token

var htmlSettings = &etree.WriteSettings{
	CanonicalEndTags: true,
	CanonicalText:    true,
	CanonicalAttrVal: true,
}

// Text returns a fragment holding a single text token
func Text(s string) Output {
	return Output{etree.NewText(s)}
}

// Nodes wraps already built tokens in a fragment
func Nodes(tokens ...etree.Token) Output {
	return Output(append([]etree.Token{}, tokens...))
}

// IsNothing reports whether o is the absent result
func (o Output) IsNothing() bool {
	return o == nil
}

// Clone deep-copies the fragment so it can be attached elsewhere without
// detaching the original tokens from their parents.
func (o Output) Clone() Output {
	if o == nil {
		return nil
	}
	out := make(Output, 0, len(o))
	for _, tok := range o {
		if c := cloneToken(tok); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func cloneToken(tok etree.Token) etree.Token {
	switch t := tok.(type) {
	case *etree.Element:
		return t.Copy()
	case *etree.CharData:
		if t.IsCData() {
			return etree.NewCData(t.Data)
		}
		return etree.NewText(t.Data)
	case *etree.Comment:
		return etree.NewComment(t.Data)
	default:
		return nil
	}
}

// AppendTo adds a copy of every token to parent
func (o Output) AppendTo(parent *etree.Element) {
	for _, tok := range o.Clone() {
		parent.AddChild(tok)
	}
}

// HTML serializes the fragment. Empty elements keep explicit end tags so the
// result is valid HTML for <span>.
func (o Output) HTML() string {
	var buf bytes.Buffer
	for _, tok := range o {
		tok.WriteTo(&buf, htmlSettings)
	}
	return buf.String()
}

// TextContent concatenates all character data in document order
func (o Output) TextContent() string {
	var b strings.Builder
	for _, tok := range o {
		writeText(&b, tok)
	}
	return b.String()
}

func writeText(b *strings.Builder, tok etree.Token) {
	switch t := tok.(type) {
	case *etree.CharData:
		b.WriteString(t.Data)
	case *etree.Element:
		for _, c := range t.Child {
			writeText(b, c)
		}
	}
}

// Elements returns the top-level elements of the fragment
func (o Output) Elements() []*etree.Element {
	var els []*etree.Element
	for _, tok := range o {
		if e, ok := tok.(*etree.Element); ok {
			els = append(els, e)
		}
	}
	return els
}
