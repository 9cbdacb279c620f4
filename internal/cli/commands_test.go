package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/arthur-debert/taml-html/pkg/testutil"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsCmd(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "", "tags")
	require.NoError(t, res.err)

	table := pterm.RemoveColorFromString(res.stdout)
	assert.Contains(t, table, "Class")
	assert.Contains(t, table, "bgBrightBlue")
	assert.Contains(t, table, "style-bg-bright-blue")
	assert.Contains(t, table, "style-bright-red")
	assert.Contains(t, table, "text style")
}

func TestCSSCmd(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "", "css")
	require.NoError(t, res.err)
	assert.Equal(t, style.DefaultTheme().CSS(), res.stdout)
	assert.Contains(t, res.stdout, ".style-error {")
}

func TestThemeCmd(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "", "theme")
	require.NoError(t, res.err)
	assert.Equal(t, style.EmbeddedThemeContent(), res.stdout)

	// The printed theme is a valid starting point for --theme
	path := testutil.CreateFile(t, t.TempDir(), "theme.yaml", res.stdout)

	res = execute(t, "", "css", "--theme", path)
	require.NoError(t, res.err)
	assert.Equal(t, style.DefaultTheme().CSS(), res.stdout)
}

func TestConfigCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "", "config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "# Using built-in defaults only")
		assert.Contains(t, res.stdout, "[render]")
		assert.Contains(t, res.stdout, "capacity = 1000")
	})

	t.Run("yaml file and environment", func(t *testing.T) {
		dir := testutil.Isolate(t)
		path := testutil.CreateFile(t, dir, "project.yaml", "render:\n  capacity: 25\n")
		t.Setenv("TAML_OUTPUT_FORMAT", "json")

		res := execute(t, "", "--config", path, "config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "# Loaded from: "+path)
		assert.Contains(t, res.stdout, "capacity = 25")
		assert.Contains(t, res.stdout, "format = 'json'")
	})

	t.Run("invalid value", func(t *testing.T) {
		testutil.Isolate(t)
		t.Setenv("TAML_RENDER_CAPACITY", "0")

		res := execute(t, "", "config")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigValid))
	})
}

func TestGenConfigCmd(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "", "gen-config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "[render]")
		assert.Contains(t, res.stdout, "# capacity = 1000")
	})

	t.Run("write", func(t *testing.T) {
		dir := testutil.Isolate(t)
		path := filepath.Join(dir, "taml-html", "config.toml")

		res := execute(t, "", "gen-config", "-w")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, path)
		assert.FileExists(t, path)

		res = execute(t, "", "gen-config", "-w")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrFileWrite))

		res = execute(t, "", "-v", "gen-config", "-w", "--force")
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "Configuration written")

		// The generated file loads as a no-op layer
		res = execute(t, "", "config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "# Loaded from: "+path)
		assert.Contains(t, res.stdout, "capacity = 1000")
	})
}

func TestVersionCmd(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "taml-html version dev")
	assert.Contains(t, res.stdout, "Commit: unknown")
}

func TestCompletionCmd(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			testutil.Isolate(t)

			res := execute(t, "", "completion", shell)
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, "taml-html")
		})
	}

	t.Run("unknown shell", func(t *testing.T) {
		testutil.Isolate(t)
		res := execute(t, "", "completion", "tcsh")
		assert.Error(t, res.err)
	})
}

func TestManCmd(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "", "man")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "TAML-HTML")
	assert.Contains(t, res.stdout, "render")
}

func TestHelpTopics(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "", "help", "topics")
		require.NoError(t, res.err)
		for _, topic := range []string{"syntax", "classes", "configuration", "example"} {
			assert.Contains(t, res.stdout, topic)
		}
	})

	t.Run("markdown topic", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "", "help", "syntax")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "TAML markup")
	})

	t.Run("markup topic", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "", "help", "example")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "TAML sample")
		assert.NotContains(t, res.stdout, "<bold>")
	})

	t.Run("command help", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "", "help", "render")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "--fallback")
	})
}
