package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal output on a color terminal and HTML otherwise
	FormatAuto Format = iota
	// FormatHTML renders HTML fragments with style classes
	FormatHTML
	// FormatTerminal renders ANSI-styled text
	FormatTerminal
	// FormatText renders the markup with tags stripped
	FormatText
	// FormatJSON renders the element tree as JSON
	FormatJSON
)

// Formats lists the selectable formats in help order
var Formats = []Format{FormatAuto, FormatHTML, FormatTerminal, FormatText, FormatJSON}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatHTML:
		return "html"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "html":
		return FormatHTML, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// DetectFormat resolves FormatAuto for the given output
func DetectFormat(output *os.File) Format {
	// Piped or redirected output gets the HTML fragment
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatHTML
	}

	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
