package topics

import (
	"fmt"
	"io"
)

// Renderer writes topic content to w. ext is the topic file extension
// (".md", ".txt") so renderers can pick a format.
type Renderer interface {
	Render(w io.Writer, content string, ext string)
}

// PlainRenderer is the default renderer that writes content as-is
type PlainRenderer struct{}

// Render writes the content unchanged
func (r *PlainRenderer) Render(w io.Writer, content string, ext string) {
	fmt.Fprint(w, content)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(w io.Writer, content string, ext string)

// Render calls f
func (f RendererFunc) Render(w io.Writer, content string, ext string) {
	f(w, content, ext)
}
