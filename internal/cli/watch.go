package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/taml-html/internal/commands"
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/arthur-debert/taml-html/pkg/ui"
	"github.com/arthur-debert/taml-html/pkg/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch <file>",
		Short:   commands.MsgWatchShort,
		Long:    commands.MsgWatchLong,
		Example: commands.MsgWatchExample,
		GroupID: "render",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.watch")
			source := args[0]

			a, err := newApp(cmd, g)
			if err != nil {
				return err
			}

			outputPath, _ := cmd.Flags().GetString("output")
			format := ui.FormatHTML
			if outputPath == "" {
				format = a.format(cmd.OutOrStdout())
			} else if f := a.cfg.OutputFormat(); f != ui.FormatAuto {
				format = f
			}
			opts := a.rendererOptions(viewProps(cmd, &source))

			handler := func(content string) error {
				var buf bytes.Buffer
				r, err := ui.NewRenderer(format, &buf, opts)
				if err != nil {
					return err
				}
				renderErr := r.RenderMarkup(content)
				if err := r.Close(); err != nil {
					return err
				}

				if outputPath != "" {
					if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
						return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", outputPath).
							WithDetail("path", outputPath)
					}
				} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return err
				}

				stats := a.view.Renderer().CacheStats()
				logger.Info().
					Str("source", source).
					Int("cached", stats.Size).
					Uint64("hits", stats.Hits).
					Uint64("misses", stats.Misses).
					Msg("Rendered")
				if renderErr != nil {
					return parseFailure(renderErr, source)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), commands.MsgWatching, source)
			return watch.New(source, 0, handler).Run(ctx)
		},
	}

	addOutputFlags(cmd)
	return cmd
}
