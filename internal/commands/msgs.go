package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render TAML markup to HTML, terminal or plain text"
	MsgRenderShort     = "Render markup files or standard input"
	MsgWatchShort      = "Re-render a markup file whenever it changes"
	MsgTagsShort       = "List the markup tags and their style classes"
	MsgCSSShort        = "Print the stylesheet for the style classes"
	MsgThemeShort      = "Print the built-in color theme"
	MsgConfigShort     = "Show the effective configuration"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgManLong         = "Generate a man page for taml-html on standard output"

	// Group titles
	MsgGroupRender = "Rendering:"
	MsgGroupConfig = "Configuration:"
	MsgGroupMisc   = "Miscellaneous:"

	// Status messages
	MsgConfigSourcesNone = "# Using built-in defaults only"
	MsgConfigSource      = "# Loaded from: %s\n"
	MsgConfigWritten     = "Configuration written to %s\n"
	MsgWatching          = "Watching %s (Ctrl+C to stop)\n"

	// Version output
	MsgVersionFormat = "taml-html version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrConfigExists = "configuration file %s already exists (use --force to overwrite)"
	MsgErrParseFailed  = "invalid markup in %s"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file (TOML or YAML)"
	MsgFlagTheme       = "Theme file overriding the built-in colors"
	MsgFlagFormat      = "Output format: auto, html, term, text or json"
	MsgFlagClass       = "Extra class added to the root and top-level elements"
	MsgFlagFallback    = "Text shown instead of markup that does not parse"
	MsgFlagDiagnostics = "Show a visible placeholder for markup that does not parse"
	MsgFlagStandalone  = "Wrap HTML output in a complete page with the stylesheet"
	MsgFlagOutput      = "Write output to a file instead of standard output"
	MsgFlagWrite       = "Write the configuration to the user config file"
	MsgFlagForce       = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/gen-config-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
