package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/parser"
	"github.com/arthur-debert/taml-html/pkg/render"
	"github.com/arthur-debert/taml-html/pkg/ui"
	"github.com/arthur-debert/taml-html/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create html renderer", format: ui.FormatHTML},
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create json renderer", format: ui.FormatJSON},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf, ui.Options{})

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestAutoWithBufferIsHTML(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatAuto, buf, ui.Options{})
	require.NoError(t, err)

	require.NoError(t, renderer.RenderMarkup("<red>x</red>"))
	assert.Equal(t, `<span class="style-taml"><span class="style-red" data-taml-tag="red">x</span></span>`+"\n", buf.String())
}

func TestRenderersShareParseFailureBehavior(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatHTML, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			calls := 0
			renderer, err := ui.NewRenderer(format, buf, ui.Options{
				Props: view.Props{
					Fallback: render.Text("FALLBACK"),
					OnError:  func(*parser.ParseError) { calls++ },
				},
			})
			require.NoError(t, err)

			err = renderer.RenderMarkup("<bold>open")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
			assert.Equal(t, 1, calls)
			assert.Contains(t, buf.String(), "FALLBACK")
			require.NoError(t, renderer.Close())
		})
	}
}

func TestRenderErrorPerFormat(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatHTML, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf, ui.Options{})
			require.NoError(t, err)

			require.NoError(t, renderer.RenderError(assert.AnError))
			assert.Contains(t, buf.String(), assert.AnError.Error())
		})
	}
}

func TestJSONRendererOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf, ui.Options{})
	require.NoError(t, err)

	require.NoError(t, renderer.RenderMarkup("<cyan>hi</cyan>"))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "success", result["state"])
}
