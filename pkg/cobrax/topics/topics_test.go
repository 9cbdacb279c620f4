package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"syntax.txt":   file("TAML syntax"),
		"classes.md":   file("# Classes\n\nstyle-red and friends"),
		"sample.taml":  file("<red>sample</red>"),
		"ignored.json": file("{}"),
	}

	t.Run("default extensions", func(t *testing.T) {
		tm := New(fsys)
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"syntax", true, "TAML syntax"},
			{"classes", true, "# Classes\n\nstyle-red and friends"},
			{"sample", false, ""},
			{"ignored", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(fsys, Options{Extensions: []string{".md", ".taml"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"classes", "sample"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(fstest.MapFS{
		"option-format.txt":  file("Format help"),
		"option-verbose.txt": file("Verbose help"),
		"syntax.txt":         file("Syntax help"),
	})
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"syntax", "syntax", true},
		{"option-format", "option-format", true},
		{"format", "option-format", true},
		{"--format", "option-format", true},
		{"-format", "option-format", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestNilAndEmptyFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())

	tm = New(fstest.MapFS{})
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func TestSubdirectoryTopics(t *testing.T) {
	tm := New(fstest.MapFS{"advanced/themes.txt": file("Theme help")})
	require.NoError(t, tm.scanTopics())

	topic, exists := tm.GetTopic("themes")
	require.True(t, exists)
	assert.Equal(t, "Theme help", topic.Content)
	assert.Equal(t, "advanced/themes.txt", topic.FilePath)
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return strings.ToUpper(content)
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "testapp", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "render",
		Short: "Render something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestIntegration_HelpCommand(t *testing.T) {
	renderer := &upperRenderer{}
	root := newRoot()
	err := InitializeWithOptions(root, fstest.MapFS{
		"syntax.md":         file("tags nest"),
		"option-format.txt": file("formats"),
	}, Options{Renderer: renderer})
	require.NoError(t, err)

	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "TAGS NEST", execute(t, root, "help", "syntax"))
		assert.Contains(t, renderer.formats, ".md")
	})

	t.Run("option topic", func(t *testing.T) {
		assert.Equal(t, "FORMATS", execute(t, root, "help", "--format"))
	})

	t.Run("topic list", func(t *testing.T) {
		out := execute(t, root, "help", "topics")
		assert.Contains(t, out, "General topics:\n  syntax")
		assert.Contains(t, out, "Option topics:\n  --format")
		assert.Contains(t, out, "Use 'testapp help <topic>'")
	})

	t.Run("command help", func(t *testing.T) {
		assert.Contains(t, execute(t, root, "help", "render"), "Render something")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# title", r.Render("# title", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
}

func TestGlamourRendererMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nSome **bold** words.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func TestByExtension(t *testing.T) {
	r := &ByExtension{
		Renderers: map[string]Renderer{
			".taml": RendererFunc(func(content, _ string) string { return "taml:" + content }),
		},
		Default: &PlainRenderer{},
	}

	assert.Equal(t, "taml:x", r.Render("x", ".taml"))
	assert.Equal(t, "x", r.Render("x", ".txt"))
	assert.Equal(t, "x", (&ByExtension{}).Render("x", ".md"))
}
