package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged. It is used when no renderer is set.
type PlainRenderer struct{}

// Render implements Renderer.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
