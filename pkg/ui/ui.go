// Package ui writes rendered markup in one of several output formats.
//
// Every format renders through a view.View, so parse failures behave the same
// everywhere: the fallback, the diagnostic placeholder or nothing is written,
// and RenderMarkup returns the parse error.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/arthur-debert/taml-html/pkg/ui/html"
	"github.com/arthur-debert/taml-html/pkg/ui/json"
	"github.com/arthur-debert/taml-html/pkg/ui/terminal"
	"github.com/arthur-debert/taml-html/pkg/ui/text"
	"github.com/arthur-debert/taml-html/pkg/view"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderMarkup renders one markup source
	RenderMarkup(markup string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// Close flushes anything the format writes once, such as a page footer
	Close() error
}

// Options carry what the renderers share
type Options struct {
	// View renders markup; a default view is created when nil
	View *view.View
	// Props supplies ClassName, OnError and Fallback for every render
	Props view.Props
	// Theme colors terminal output and the standalone stylesheet
	Theme *style.Theme
	// Standalone wraps HTML output in a complete page
	Standalone bool
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved with DetectFormat when output is a file.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	if opts.View == nil {
		opts.View = view.New(nil, view.Options{})
	}
	if opts.Theme == nil {
		opts.Theme = style.DefaultTheme()
	}

	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		return NewRenderer(FormatHTML, output, opts)
	case FormatHTML:
		return html.New(output, opts.View, opts.Props, html.Page{
			Standalone: opts.Standalone,
			CSS:        opts.Theme.CSS(),
		}), nil
	case FormatTerminal:
		return terminal.New(output, opts.View, opts.Props, opts.Theme), nil
	case FormatText:
		return text.New(output, opts.View, opts.Props), nil
	case FormatJSON:
		return json.New(output, opts.View, opts.Props), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
