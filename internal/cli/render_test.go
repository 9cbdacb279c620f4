package cli_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStdinDefaultsToHTML(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "<red>hi</red>", "render")
	require.NoError(t, res.err)
	assert.Equal(t,
		`<span class="style-taml"><span class="style-red" data-taml-tag="red">hi</span></span>`+"\n",
		res.stdout)
}

func TestRenderDashReadsStdin(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "<bold>b</bold>", "render", "-f", "text", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "b\n", res.stdout)
}

func TestRenderClassFlag(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "a <red>x</red>", "render", "--format", "html", "--class", "note")
	require.NoError(t, res.err)
	assert.Equal(t,
		`<span class="style-taml note">a <span class="style-red note" data-taml-tag="red">x</span></span>`+"\n",
		res.stdout)
}

func TestRenderFilesInOrder(t *testing.T) {
	dir := testutil.Isolate(t)
	first := testutil.CreateFile(t, dir, "first.taml", "<green>one</green>")
	second := testutil.CreateFile(t, dir, "second.taml", "<italic>two</italic>")

	res := execute(t, "", "render", "-f", "text", first, second)
	require.NoError(t, res.err)
	assert.Equal(t, "one\ntwo\n", res.stdout)
}

func TestRenderParseFailure(t *testing.T) {
	t.Run("silent by default", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "<red>x", "render", "-f", "html")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrParse))
		assert.Contains(t, res.err.Error(), "invalid markup in standard input")
		assert.Contains(t, res.err.Error(), "unclosed tag <red>")
		assert.Empty(t, res.stdout)

		details := errors.GetErrorDetails(res.err)
		assert.Equal(t, 1, details["line"])
		assert.Equal(t, 1, details["column"])
		assert.Equal(t, "-", details["source"])

		assert.Contains(t, res.stderr, "unclosed tag <red>", "OnError logs a warning")
		assert.Contains(t, res.stderr, "cli.render")
	})

	t.Run("placeholder with diagnostics", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "<red>x", "render", "-f", "html", "--diagnostics")
		require.Error(t, res.err)
		assert.Contains(t, res.stdout, `class="style-taml style-error"`)
		assert.Contains(t, res.stdout, `title="TAML Parse Error: unclosed tag &lt;red> at line 1, column 1"`)
		assert.Contains(t, res.stdout, "[TAML Parse Error]</span>")
	})

	t.Run("diagnostics from the environment", func(t *testing.T) {
		testutil.Isolate(t)
		t.Setenv("TAML_RENDER_DIAGNOSTICS", "true")

		res := execute(t, "<nope>x</nope>", "render", "-f", "html")
		require.Error(t, res.err)
		assert.Contains(t, res.stdout, "[TAML Parse Error]")
	})

	t.Run("fallback replaces the output", func(t *testing.T) {
		testutil.Isolate(t)

		res := execute(t, "<red>x", "render", "-f", "html", "--diagnostics", "--fallback", "unavailable")
		require.NoError(t, res.err)
		assert.Equal(t, "unavailable\n", res.stdout)
	})

	t.Run("remaining files are still rendered", func(t *testing.T) {
		dir := testutil.Isolate(t)
		good := testutil.CreateFile(t, dir, "good.taml", "<red>ok</red>")
		bad := testutil.CreateFile(t, dir, "bad.taml", "</red>")
		last := testutil.CreateFile(t, dir, "last.taml", "<blue>end</blue>")

		res := execute(t, "", "render", "-f", "text", good, bad, last)
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid markup in "+bad)
		assert.Equal(t, "ok\nend\n", res.stdout)
	})
}

func TestRenderToOutputFile(t *testing.T) {
	dir := testutil.Isolate(t)
	outPath := filepath.Join(dir, "out.html")

	res := execute(t, "<cyan>c</cyan>", "render", "-o", outPath)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	assert.Contains(t, testutil.ReadFile(t, outPath), `<span class="style-cyan" data-taml-tag="cyan">c</span>`)
}

func TestRenderStandalone(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "<red>a</red>", "render", "-f", "html", "--standalone")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "<!DOCTYPE html>")
	assert.Contains(t, res.stdout, ".style-red {")
	assert.Contains(t, res.stdout, `<div><span class="style-taml">`)
}

func TestRenderJSON(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "<bold>b</bold>", "render", "-f", "json")
	require.NoError(t, res.err)

	var doc struct {
		State string `json:"state"`
		Nodes []struct {
			Type     string `json:"type"`
			Class    string `json:"class"`
			Children []struct {
				Tag string `json:"tag"`
			} `json:"children"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
	assert.Equal(t, "success", doc.State)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "style-taml", doc.Nodes[0].Class)
	require.Len(t, doc.Nodes[0].Children, 1)
	assert.Equal(t, "bold", doc.Nodes[0].Children[0].Tag)
}

func TestRenderErrors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		testutil.Isolate(t)
		res := execute(t, "x", "render", "-f", "pdf")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigValid))
	})

	t.Run("missing file", func(t *testing.T) {
		dir := testutil.Isolate(t)
		res := execute(t, "", "render", filepath.Join(dir, "missing.taml"))
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrNotFound))
	})

	t.Run("missing config file", func(t *testing.T) {
		dir := testutil.Isolate(t)
		res := execute(t, "x", "--config", filepath.Join(dir, "nope.toml"), "render")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigLoad))
	})

	t.Run("bad theme", func(t *testing.T) {
		dir := testutil.Isolate(t)
		res := execute(t, "x", "render", "--theme", filepath.Join(dir, "nope.yaml"))
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrThemeLoad))
	})
}

func TestRenderCmdVerboseTiming(t *testing.T) {
	testutil.Isolate(t)

	res := execute(t, "<bold>hi</bold>", "-vv", "render", "-f", "html")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Render finished")
	assert.Contains(t, res.stderr, "Operation completed")

	res = execute(t, "<bold>hi</bold>", "render", "-f", "html")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "Operation completed", "timing is debug only")
}
