package topics

// Renderer formats topic content for the terminal. format is the topic
// file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, format string) string

// Render calls f
func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

// ByExtension picks a renderer per file extension, falling back to Default
type ByExtension struct {
	Renderers map[string]Renderer
	Default   Renderer
}

// Render dispatches on format
func (b *ByExtension) Render(content, format string) string {
	if r, ok := b.Renderers[format]; ok {
		return r.Render(content, format)
	}
	if b.Default != nil {
		return b.Default.Render(content, format)
	}
	return content
}
