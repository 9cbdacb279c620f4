package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/taml-html/pkg/config"
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/arthur-debert/taml-html/pkg/ui"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions hold the persistent flags of the root command
type globalOptions struct {
	verbosity  int
	configPath string
}

// flagKeys maps flag names to the configuration keys they override
var flagKeys = map[string]string{
	"theme":       "theme.path",
	"format":      "output.format",
	"standalone":  "output.standalone",
	"class":       "render.class",
	"diagnostics": "render.diagnostics",
}

// app is what a command needs to render: the effective configuration and a
// view sharing one cache
type app struct {
	cfg   *config.Config
	files []string
	theme *style.Theme
	view  *view.View
}

// newApp loads the configuration, applying only the flags the user set
func newApp(cmd *cobra.Command, g *globalOptions) (*app, error) {
	logger := logging.GetLogger("cli")

	res, err := config.Load(config.LoadOptions{
		Path:      g.configPath,
		Overrides: flagOverrides(cmd.Flags()),
	})
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	theme := style.DefaultTheme()
	if cfg.Theme.Path != "" {
		theme, err = style.LoadTheme(cfg.Theme.Path)
		if err != nil {
			return nil, err
		}
	}

	renderer := render.New(render.NewCache(cfg.Render.Capacity))
	logger.Debug().
		Int("capacity", cfg.Render.Capacity).
		Bool("diagnostics", cfg.Render.Diagnostics).
		Str("format", cfg.Output.Format).
		Msg("Renderer configured")

	return &app{
		cfg:   cfg,
		files: res.Files,
		theme: theme,
		view:  view.New(renderer, view.Options{DiagnosticsEnabled: cfg.Render.Diagnostics}),
	}, nil
}

func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	return overrides
}

// rendererOptions are the ui options for props
func (a *app) rendererOptions(props view.Props) ui.Options {
	if props.ClassName == "" {
		props.ClassName = a.cfg.Render.Class
	}
	return ui.Options{
		View:       a.view,
		Props:      props,
		Theme:      a.theme,
		Standalone: a.cfg.Output.Standalone,
	}
}

// format resolves FormatAuto for w; files given with --output are not
// terminals and get HTML
func (a *app) format(w io.Writer) ui.Format {
	f := a.cfg.OutputFormat()
	if f != ui.FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return ui.DetectFormat(file)
	}
	return ui.FormatHTML
}

// readSource reads a markup file, or stdin for "-"
func readSource(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileRead, "failed to read standard input")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrNotFound, "no such file %s", name).
			WithDetail("path", name)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", name).
			WithDetail("path", name)
	}
	return string(data), nil
}
