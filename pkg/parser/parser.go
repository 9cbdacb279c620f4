package parser

import "github.com/arthur-debert/taml-html/pkg/ast"

// frame tracks an open element while parsing
type frame struct {
	element  *ast.Element
	position int
}

// Parse parses TAML markup into a document tree
func Parse(input string) (*ast.Document, error) {
	doc, perr := parse(input)
	if perr != nil {
		return nil, perr
	}
	return doc, nil
}

// ParseSafe parses markup and never panics; failures are reported in the
// returned Result.
func ParseSafe(input string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: newParseError(input, 0, "internal parser error: %v", r)}
		}
	}()

	doc, perr := parse(input)
	if perr != nil {
		return Result{Err: perr}
	}
	return Result{AST: doc}
}

func parse(input string) (*ast.Document, *ParseError) {
	doc := ast.NewDocument()
	var stack []frame

	appendChild := func(n ast.Node) {
		if len(stack) == 0 {
			doc.Children = append(doc.Children, n)
			return
		}
		top := stack[len(stack)-1].element
		top.Children = append(top.Children, n)
	}

	for _, token := range Tokenize(input) {
		switch token.Type {
		case TokenText:
			appendChild(ast.NewText(token.Text))

		case TokenOpenTag:
			if !ast.IsValidTag(token.Name) {
				return nil, newParseError(input, token.Position, "unknown tag <%s>", token.Name)
			}
			element := ast.NewElement(ast.Tag(token.Name))
			appendChild(element)
			stack = append(stack, frame{element: element, position: token.Position})

		case TokenCloseTag:
			if !ast.IsValidTag(token.Name) {
				return nil, newParseError(input, token.Position, "unknown tag </%s>", token.Name)
			}
			if len(stack) == 0 {
				return nil, newParseError(input, token.Position, "unexpected closing tag </%s>", token.Name)
			}
			top := stack[len(stack)-1]
			if string(top.element.TagName) != token.Name {
				return nil, newParseError(input, token.Position,
					"mismatched closing tag </%s>, expected </%s>", token.Name, top.element.TagName)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, newParseError(input, top.position, "unclosed tag <%s>", top.element.TagName)
	}

	return doc, nil
}
