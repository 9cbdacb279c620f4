package cli

import (
	"fmt"

	"github.com/arthur-debert/taml-html/internal/commands"
	"github.com/arthur-debert/taml-html/pkg/ast"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		Short:   commands.MsgTagsShort,
		GroupID: "render",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Tag", "Kind", "Class"}}
			for _, tag := range ast.Tags() {
				data = append(data, []string{tag.String(), tag.Kind().String(), style.ClassFor(tag)})
			}

			table, err := pterm.DefaultTable.
				WithHasHeader().
				WithData(data).
				Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

func newCSSCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "css",
		Short:   commands.MsgCSSShort,
		GroupID: "render",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, g)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.theme.CSS())
			return err
		},
	}
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "theme",
		Short:   commands.MsgThemeShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), style.EmbeddedThemeContent())
			return err
		},
	}
}
