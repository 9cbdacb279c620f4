package cli

import (
	stderrors "errors"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/taml-html/internal/commands"
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/arthur-debert/taml-html/pkg/parser"
	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/ui"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/spf13/cobra"
)

// outputFlags are shared by render and watch
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "auto", commands.MsgFlagFormat)
	cmd.Flags().StringP("class", "c", "", commands.MsgFlagClass)
	cmd.Flags().Bool("diagnostics", false, commands.MsgFlagDiagnostics)
	cmd.Flags().Bool("standalone", false, commands.MsgFlagStandalone)
	cmd.Flags().StringP("output", "o", "", commands.MsgFlagOutput)
	cmd.Flags().String("fallback", "", commands.MsgFlagFallback)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(ui.Formats))
		for _, f := range ui.Formats {
			names = append(names, f.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// viewProps builds the props shared by every source of one command run
func viewProps(cmd *cobra.Command, source *string) view.Props {
	props := view.Props{
		OnError: func(perr *parser.ParseError) {
			logger := logging.WithFields(map[string]interface{}{
				"component": "cli.render",
				"source":    *source,
				"line":      perr.Line,
				"column":    perr.Column,
			})
			logger.Warn().Msg(perr.Message)
		},
	}
	if f := cmd.Flags().Lookup("fallback"); f != nil && f.Changed {
		props.Fallback = render.Text(f.Value.String())
	}
	return props
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [file...]",
		Short:   commands.MsgRenderShort,
		Long:    commands.MsgRenderLong,
		Example: commands.MsgRenderExample,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")
			defer logging.LogDuration(time.Now(), "render")

			a, err := newApp(cmd, g)
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(cmd)
			if err != nil {
				return err
			}
			defer closeOut()

			var source string
			props := viewProps(cmd, &source)
			r, err := ui.NewRenderer(a.format(out), out, a.rendererOptions(props))
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			var failed error
			for _, source = range args {
				markup, err := readSource(cmd.InOrStdin(), source)
				if err != nil {
					return err
				}
				err = r.RenderMarkup(markup)
				switch {
				case err == nil:
				case errors.IsErrorCode(err, errors.ErrParse):
					// The fallback stands in for the markup, so it is not a failure
					if props.Fallback != nil {
						continue
					}
					if failed == nil {
						failed = parseFailure(err, source)
					}
				default:
					return errors.Wrap(err, errors.ErrRender, "failed to write output")
				}
			}

			if err := r.Close(); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to finish output")
			}

			stats := a.view.Renderer().CacheStats()
			logger.Debug().
				Int("sources", len(args)).
				Int("cached", stats.Size).
				Uint64("hits", stats.Hits).
				Msg("Render finished")
			return failed
		},
	}

	addOutputFlags(cmd)
	return cmd
}

// openOutput returns the --output file, or the command's stdout
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", path).
			WithDetail("path", path)
	}
	return f, func() { _ = f.Close() }, nil
}

// parseFailure names the source in a parse error
func parseFailure(err error, source string) error {
	var perr *parser.ParseError
	if !stderrors.As(err, &perr) {
		return err
	}
	return errors.Wrapf(perr, errors.ErrParse, commands.MsgErrParseFailed, displayName(source)).
		WithDetails(errors.GetErrorDetails(err)).
		WithDetail("source", source)
}

func displayName(source string) string {
	if source == "-" {
		return "standard input"
	}
	return source
}
