package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/taml-html/pkg/ast"
)

// CSS returns a stylesheet covering every class the renderer emits. Light
// colors are the default; dark colors apply under prefers-color-scheme.
func (t *Theme) CSS() string {
	var b strings.Builder

	b.WriteString("/* TAML styles */\n")
	fmt.Fprintf(&b, ".%s {\n  white-space: pre-wrap;\n}\n", RootClass)
	fmt.Fprintf(&b, ".%s {\n  text-decoration: underline wavy;\n  cursor: help;\n", ErrorClass)
	if c, ok := t.Color(ast.Red); ok {
		fmt.Fprintf(&b, "  color: %s;\n", c.Light)
	}
	b.WriteString("}\n")

	for _, tag := range ast.Tags() {
		decls := t.declarations(tag, false)
		if len(decls) == 0 {
			continue
		}
		writeRule(&b, "", ClassFor(tag), decls)
	}

	b.WriteString("\n@media (prefers-color-scheme: dark) {\n")
	if c, ok := t.Color(ast.Red); ok {
		writeRule(&b, "  ", ErrorClass, []string{"color: " + c.Dark})
	}
	for _, tag := range ast.Tags() {
		if tag.Kind() == ast.KindTextStyle {
			continue
		}
		decls := t.declarations(tag, true)
		if len(decls) == 0 {
			continue
		}
		writeRule(&b, "  ", ClassFor(tag), decls)
	}
	b.WriteString("}\n")

	return b.String()
}

func (t *Theme) declarations(tag ast.Tag, dark bool) []string {
	pick := func(c ColorDef) string {
		if dark {
			return c.Dark
		}
		return c.Light
	}

	switch tag.Kind() {
	case ast.KindForeground:
		if def, ok := t.colors[tag]; ok {
			return []string{"color: " + pick(def)}
		}
	case ast.KindBackground:
		if def, ok := t.colors[tag.Foreground()]; ok {
			return []string{"background-color: " + pick(def)}
		}
	case ast.KindTextStyle:
		switch tag {
		case ast.Bold:
			return []string{"font-weight: bold"}
		case ast.Dim:
			return []string{fmt.Sprintf("opacity: %g", t.dimOpacity)}
		case ast.Italic:
			return []string{"font-style: italic"}
		case ast.Underline:
			return []string{"text-decoration: underline"}
		case ast.Strikethrough:
			return []string{"text-decoration: line-through"}
		}
	}
	return nil
}

func writeRule(b *strings.Builder, indent, class string, decls []string) {
	fmt.Fprintf(b, "%s.%s {\n", indent, class)
	for _, d := range decls {
		fmt.Fprintf(b, "%s  %s;\n", indent, d)
	}
	fmt.Fprintf(b, "%s}\n", indent)
}
