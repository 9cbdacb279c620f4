package cli

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/taml-html/internal/commands"
	"github.com/arthur-debert/taml-html/pkg/config"
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   commands.MsgConfigShort,
		Long:    commands.MsgConfigLong,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(a.files) == 0 {
				_, _ = fmt.Fprintln(out, commands.MsgConfigSourcesNone)
			}
			for _, f := range a.files {
				_, _ = fmt.Fprintf(out, commands.MsgConfigSource, f)
			}

			content, err := config.ToTOML(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   commands.MsgGenConfigShort,
		Example: commands.MsgGenConfigExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()

			write, _ := cmd.Flags().GetBool("write")
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			path, err := xdg.ConfigFile(config.UserConfigFile)
			if err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to resolve the config directory")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrFileWrite, commands.MsgErrConfigExists, path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
					WithDetail("path", path)
			}

			logger := logging.GetLogger("cli.config")
			logger.Info().Str("path", path).Msg("Configuration written")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), commands.MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, commands.MsgFlagWrite)
	cmd.Flags().Bool("force", false, commands.MsgFlagForce)

	return cmd
}
