package parser

import (
	"regexp"
	"strings"
)

// TokenType represents the kind of a markup token
type TokenType int

const (
	TokenText     TokenType = iota // literal text, entities decoded
	TokenOpenTag                   // <name>
	TokenCloseTag                  // </name>
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenOpenTag:
		return "open"
	case TokenCloseTag:
		return "close"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit of TAML markup
type Token struct {
	Type     TokenType
	Name     string // set for OpenTag and CloseTag
	Text     string // set for Text
	Position int    // byte offset in original input
}

var (
	// Tag names are identifiers; vocabulary checks happen in the parser so
	// that unknown tags are reported instead of passing through as text.
	openTagPattern  = regexp.MustCompile(`^<([A-Za-z][A-Za-z0-9]*)>`)
	closeTagPattern = regexp.MustCompile(`^</([A-Za-z][A-Za-z0-9]*)>`)

	entityDecoder = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// Tokenize scans input and returns a flat token stream. Adjacent text is
// merged into a single token.
func Tokenize(input string) []Token {
	var tokens []Token
	var text strings.Builder
	textStart := -1

	flushText := func() {
		if textStart < 0 {
			return
		}
		tokens = append(tokens, Token{
			Type:     TokenText,
			Text:     entityDecoder.Replace(text.String()),
			Position: textStart,
		})
		text.Reset()
		textStart = -1
	}

	pos := 0
	for pos < len(input) {
		remaining := input[pos:]

		if remaining[0] == '<' {
			if loc := closeTagPattern.FindStringSubmatchIndex(remaining); loc != nil {
				flushText()
				tokens = append(tokens, Token{
					Type:     TokenCloseTag,
					Name:     remaining[loc[2]:loc[3]],
					Position: pos,
				})
				pos += loc[1]
				continue
			}
			if loc := openTagPattern.FindStringSubmatchIndex(remaining); loc != nil {
				flushText()
				tokens = append(tokens, Token{
					Type:     TokenOpenTag,
					Name:     remaining[loc[2]:loc[3]],
					Position: pos,
				})
				pos += loc[1]
				continue
			}
		}

		// Text runs until the next '<' that is not the current byte
		next := strings.IndexByte(remaining[1:], '<')
		if next < 0 {
			next = len(remaining)
		} else {
			next++
		}
		if textStart < 0 {
			textStart = pos
		}
		text.WriteString(remaining[:next])
		pos += next
	}
	flushText()

	return tokens
}
