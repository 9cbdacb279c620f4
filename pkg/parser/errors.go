package parser

import (
	"fmt"

	"github.com/arthur-debert/taml-html/pkg/ast"
)

// ParseError describes why markup could not be parsed
type ParseError struct {
	Message  string
	Position int // byte offset
	Line     int // 1-based
	Column   int // 1-based, in runes
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

func newParseError(input string, position int, format string, args ...interface{}) *ParseError {
	line, column := lineColumn(input, position)
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Position: position,
		Line:     line,
		Column:   column,
	}
}

// lineColumn converts a byte offset into a 1-based line and rune column
func lineColumn(input string, position int) (int, int) {
	if position > len(input) {
		position = len(input)
	}
	line, column := 1, 1
	for _, r := range input[:position] {
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// Result is the outcome of ParseSafe: exactly one of AST and Err is set
type Result struct {
	AST *ast.Document
	Err *ParseError
}

// Success reports whether parsing succeeded
func (r Result) Success() bool {
	return r.Err == nil && r.AST != nil
}
