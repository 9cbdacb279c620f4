package style

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/taml-html/pkg/ast"
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Config represents a theme file
type Config struct {
	Colors     map[string]ColorDef `yaml:"colors"`
	DimOpacity float64             `yaml:"dimOpacity,omitempty"`
}

// Theme holds the resolved palette for the color tags
type Theme struct {
	colors     map[ast.Tag]ColorDef
	dimOpacity float64
}

const defaultDimOpacity = 0.6

//go:embed theme.yaml
var embeddedTheme []byte

// DefaultTheme returns the theme embedded in the binary. If the embedded data
// cannot be used, a colorless theme is returned so rendering still works.
func DefaultTheme() *Theme {
	theme, err := LoadThemeFromData(embeddedTheme)
	if err != nil {
		return &Theme{colors: map[ast.Tag]ColorDef{}, dimOpacity: defaultDimOpacity}
	}
	return theme
}

// EmbeddedThemeContent returns the YAML source of the default theme
func EmbeddedThemeContent() string {
	return string(embeddedTheme)
}

// LoadTheme loads a theme from a YAML file
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path)
	}
	theme, err := LoadThemeFromData(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "invalid theme file %s", path)
	}
	return theme, nil
}

// LoadThemeFromData loads a theme from YAML bytes. Every color tag must be
// defined.
func LoadThemeFromData(data []byte) (*Theme, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeParse, "failed to parse theme data")
	}

	theme := &Theme{
		colors:     make(map[ast.Tag]ColorDef, len(config.Colors)),
		dimOpacity: config.DimOpacity,
	}
	if theme.dimOpacity <= 0 || theme.dimOpacity > 1 {
		theme.dimOpacity = defaultDimOpacity
	}

	var missing []string
	for _, tag := range ast.ColorTags() {
		def, ok := config.Colors[string(tag)]
		if !ok || def.Light == "" || def.Dark == "" {
			missing = append(missing, string(tag))
			continue
		}
		theme.colors[tag] = def
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.Newf(errors.ErrThemeParse, "theme is missing colors: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	for name := range config.Colors {
		if tag := ast.Tag(name); tag.Kind() != ast.KindForeground {
			return nil, errors.Newf(errors.ErrThemeParse, "theme defines unknown color %q", name)
		}
	}

	return theme, nil
}

// Color returns the adaptive color a tag paints with. Background tags
// resolve to their foreground counterpart.
func (t *Theme) Color(tag ast.Tag) (lipgloss.AdaptiveColor, bool) {
	def, ok := t.colors[tag.Foreground()]
	if !ok {
		return lipgloss.AdaptiveColor{}, false
	}
	return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}, true
}

// Style returns the lipgloss style for a tag. Styles are bound to r so that
// color downsampling follows r's output; a nil r uses the default renderer.
func (t *Theme) Style(r *lipgloss.Renderer, tag ast.Tag) lipgloss.Style {
	var s lipgloss.Style
	if r != nil {
		s = r.NewStyle()
	} else {
		s = lipgloss.NewStyle()
	}

	switch tag.Kind() {
	case ast.KindForeground:
		if c, ok := t.Color(tag); ok {
			s = s.Foreground(c)
		}
	case ast.KindBackground:
		if c, ok := t.Color(tag); ok {
			s = s.Background(c)
		}
	case ast.KindTextStyle:
		switch tag {
		case ast.Bold:
			s = s.Bold(true)
		case ast.Dim:
			s = s.Faint(true)
		case ast.Italic:
			s = s.Italic(true)
		case ast.Underline:
			s = s.Underline(true)
		case ast.Strikethrough:
			s = s.Strikethrough(true)
		}
	}

	return s
}

// String describes the theme for logging
func (t *Theme) String() string {
	return fmt.Sprintf("Theme{colors: %d, dimOpacity: %.2f}", len(t.colors), t.dimOpacity)
}
