package ast

// NodeType identifies the variant of a Node
type NodeType string

const (
	NodeDocument NodeType = "document"
	NodeElement  NodeType = "element"
	NodeText     NodeType = "text"
)

// Node is any node of a parsed TAML tree.
// The interface is left open: consumers must tolerate variants they do not
// know about.
type Node interface {
	Type() NodeType
}

// Document is the root of a parsed tree
type Document struct {
	Children []Node
}

// Element is a tagged span of markup
type Element struct {
	TagName  Tag
	Children []Node
}

// Text is literal content between tags
type Text struct {
	Content string
}

func (*Document) Type() NodeType { return NodeDocument }
func (*Element) Type() NodeType  { return NodeElement }
func (*Text) Type() NodeType     { return NodeText }

// NewDocument creates a document with the given children
func NewDocument(children ...Node) *Document {
	return &Document{Children: children}
}

// NewElement creates an element with the given tag and children
func NewElement(tag Tag, children ...Node) *Element {
	return &Element{TagName: tag, Children: children}
}

// NewText creates a text node
func NewText(content string) *Text {
	return &Text{Content: content}
}

// IsDocument reports whether n is a Document
func IsDocument(n Node) bool {
	_, ok := n.(*Document)
	return ok
}

// IsElement reports whether n is an Element
func IsElement(n Node) bool {
	_, ok := n.(*Element)
	return ok
}

// IsText reports whether n is a Text node
func IsText(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// Walk visits n and its descendants depth-first, stopping a branch when fn
// returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch v := n.(type) {
	case *Document:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case *Element:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	}
}
