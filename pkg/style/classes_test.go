package style_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/taml-html/pkg/ast"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestClassFor(t *testing.T) {
	tests := []struct {
		tag  ast.Tag
		want string
	}{
		{ast.Red, "style-red"},
		{ast.White, "style-white"},
		{ast.BrightRed, "style-bright-red"},
		{ast.BrightBlack, "style-bright-black"},
		{ast.BgBlue, "style-bg-blue"},
		{ast.BgBrightBlue, "style-bg-bright-blue"},
		{ast.BgBrightWhite, "style-bg-bright-white"},
		{ast.Bold, "style-bold"},
		{ast.Strikethrough, "style-strikethrough"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.want, style.ClassFor(tt.tag))
		})
	}
}

func TestClassForCoversVocabulary(t *testing.T) {
	seen := make(map[string]ast.Tag)
	for _, tag := range ast.Tags() {
		class := style.ClassFor(tag)

		assert.True(t, strings.HasPrefix(class, style.ClassPrefix), "class %q for %s", class, tag)
		assert.Equal(t, strings.ToLower(class), class, "class for %s must be lowercase", tag)
		assert.NotContains(t, class, " ")

		prev, dup := seen[class]
		assert.False(t, dup, "%s and %s share class %q", prev, tag, class)
		seen[class] = tag
	}
	assert.Len(t, seen, 37)
}

func TestCombine(t *testing.T) {
	assert.Equal(t, "", style.Combine())
	assert.Equal(t, "", style.Combine("", ""))
	assert.Equal(t, "a b", style.Combine("a", "", "b"))
	assert.Equal(t, "style-taml x x", style.Combine(style.RootClass, "x", "x"))
}
