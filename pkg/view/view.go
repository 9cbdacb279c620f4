// Package view embeds TAML markup in a host element tree. It parses the
// markup, renders it through a shared Renderer and decides what to show when
// the markup is invalid.
package view

import (
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/arthur-debert/taml-html/pkg/parser"
	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/beevik/etree"
)

const (
	// PlaceholderText is shown in place of markup that failed to parse
	PlaceholderText = "[TAML Parse Error]"
	// PlaceholderTitlePrefix starts the tooltip of the placeholder
	PlaceholderTitlePrefix = "TAML Parse Error: "
)

// State is the lifecycle stage of a single render
type State int

// Render only returns RenderSuccess or ParseFailure. Idle and Parsing mark
// the stages before a result exists and are never returned.
const (
	// Idle is the zero State, before any markup is seen
	Idle State = iota
	// Parsing is the stage between receiving markup and having a tree
	Parsing
	// RenderSuccess means the markup parsed and its tree was rendered
	RenderSuccess
	// ParseFailure means the markup was rejected and a failure path ran
	ParseFailure
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Parsing:
		return "parsing"
	case RenderSuccess:
		return "success"
	case ParseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Props are the inputs of one render
type Props struct {
	// Markup is the TAML source
	Markup string
	// ClassName is added to the root container and top-level elements
	ClassName string
	// OnError is called once when the markup does not parse
	OnError func(*parser.ParseError)
	// Fallback replaces the output on parse failure; nil means none
	Fallback render.Output
}

// Options configure a View
type Options struct {
	// DiagnosticsEnabled shows a visible placeholder for invalid markup
	// instead of rendering nothing
	DiagnosticsEnabled bool
	// Parse is the safe-parse function; defaults to parser.ParseSafe
	Parse func(string) parser.Result
}

// View renders markup props into element fragments
type View struct {
	renderer *render.Renderer
	opts     Options
}

// New creates a view rendering through r. A nil r gets a renderer with its
// own default cache.
func New(r *render.Renderer, opts Options) *View {
	if r == nil {
		r = render.New(nil)
	}
	if opts.Parse == nil {
		opts.Parse = parser.ParseSafe
	}
	return &View{renderer: r, opts: opts}
}

// Renderer returns the renderer backing the view
func (v *View) Renderer() *render.Renderer {
	return v.renderer
}

// Render returns the fragment for props. See RenderState.
func (v *View) Render(p Props) render.Output {
	out, _ := v.RenderState(p)
	return out
}

// RenderState renders props and reports the state the render ended in.
//
// Valid markup is wrapped in a <span> carrying the root class. Invalid markup
// yields the fallback if one was given, else the diagnostic placeholder when
// diagnostics are enabled, else nothing.
func (v *View) RenderState(p Props) (render.Output, State) {
	logger := logging.GetLogger("view")
	state := Parsing

	result := v.opts.Parse(p.Markup)
	if !result.Success() {
		state = ParseFailure
		perr := result.Err
		if perr == nil {
			perr = &parser.ParseError{Message: "parser returned no document", Line: 1, Column: 1}
		}

		logger.Debug().
			Str("error", perr.Error()).
			Int("line", perr.Line).
			Int("column", perr.Column).
			Msg("Markup failed to parse")

		if p.OnError != nil {
			p.OnError(perr)
		}

		switch {
		case p.Fallback != nil:
			return p.Fallback, state
		case v.opts.DiagnosticsEnabled:
			return Placeholder(perr, p.ClassName), state
		default:
			return nil, state
		}
	}

	content := v.renderer.RenderCached(result.AST, p.Markup, p.ClassName)

	root := etree.NewElement(render.ElementTag)
	root.CreateAttr("class", style.Combine(style.RootClass, p.ClassName))
	content.AppendTo(root)

	return render.Nodes(root), RenderSuccess
}

// RenderWithError behaves like Render but also returns the parse failure as
// an ErrParse error. The output is still produced from Fallback or the
// placeholder so callers can show it and report the error.
func (v *View) RenderWithError(p Props) (render.Output, error) {
	var perr *parser.ParseError
	onError := p.OnError
	p.OnError = func(err *parser.ParseError) {
		perr = err
		if onError != nil {
			onError(err)
		}
	}

	out, state := v.RenderState(p)
	if state != ParseFailure {
		return out, nil
	}
	return out, errors.Wrap(perr, errors.ErrParse, "invalid markup").
		WithDetail("line", perr.Line).
		WithDetail("column", perr.Column)
}

// Placeholder builds the visible stand-in for markup that failed to parse
func Placeholder(perr *parser.ParseError, className string) render.Output {
	el := etree.NewElement(render.ElementTag)
	el.CreateAttr("class", style.Combine(style.RootClass, style.ErrorClass, className))
	el.CreateAttr("title", PlaceholderTitlePrefix+perr.Error())
	el.CreateText(PlaceholderText)
	return render.Nodes(el)
}
