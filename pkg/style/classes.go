package style

import (
	"strings"

	"github.com/arthur-debert/taml-html/pkg/ast"
)

const (
	// ClassPrefix starts every generated class name
	ClassPrefix = "style-"
	// RootClass marks the container wrapping a rendered document
	RootClass = ClassPrefix + "taml"
	// ErrorClass marks the parse-error placeholder
	ErrorClass = ClassPrefix + "error"
)

// ClassFor returns the class name for a markup tag. The tag is assumed to
// belong to the vocabulary.
func ClassFor(tag ast.Tag) string {
	name := string(tag)

	if rest, ok := strings.CutPrefix(name, "bright"); ok {
		return ClassPrefix + "bright-" + strings.ToLower(rest)
	}

	if rest, ok := strings.CutPrefix(name, "bg"); ok {
		if color, ok := strings.CutPrefix(rest, "Bright"); ok {
			return ClassPrefix + "bg-bright-" + strings.ToLower(color)
		}
		return ClassPrefix + "bg-" + strings.ToLower(rest)
	}

	return ClassPrefix + strings.ToLower(name)
}

// Combine joins the non-empty class names with single spaces, keeping order
// and duplicates.
func Combine(classes ...string) string {
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}
