package cli

import (
	"github.com/arthur-debert/taml-html/internal/commands"
	"github.com/arthur-debert/taml-html/internal/version"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "taml-html",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Short(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithOutput(g.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", commands.MsgFlagConfig)
	rootCmd.PersistentFlags().String("theme", "", commands.MsgFlagTheme)

	rootCmd.AddGroup(
		&cobra.Group{ID: "render", Title: commands.MsgGroupRender},
		&cobra.Group{ID: "config", Title: commands.MsgGroupConfig},
		&cobra.Group{ID: "misc", Title: commands.MsgGroupMisc},
	)

	// Add all commands
	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newCSSCmd(g))
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Initialize topic-based help system from the embedded topics
	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
