package cli

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/taml-html/pkg/cobrax/topics"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/arthur-debert/taml-html/pkg/ui/terminal"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFiles embed.FS

// topicExtensions are the help topic formats; .taml topics are rendered as
// markup
var topicExtensions = []string{".md", ".taml"}

func initTopics(rootCmd *cobra.Command) error {
	fsys, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return err
	}
	return topics.InitializeWithOptions(rootCmd, fsys, topics.Options{
		Extensions: topicExtensions,
		Renderer: &topics.ByExtension{
			Renderers: map[string]topics.Renderer{
				".taml": topics.RendererFunc(renderMarkupTopic),
			},
			Default: topics.NewGlamourRenderer(),
		},
	})
}

// renderMarkupTopic styles a markup topic for stdout, returning the source
// when it does not parse
func renderMarkupTopic(content, _ string) string {
	v := view.New(nil, view.Options{})
	out, err := v.RenderWithError(view.Props{Markup: content})
	if err != nil {
		return content
	}

	var buf bytes.Buffer
	r := terminal.NewWithRenderer(&buf, v, view.Props{}, style.DefaultTheme(), lipgloss.NewRenderer(os.Stdout))
	return strings.TrimRight(r.Format(out), "\n") + "\n"
}
