package cli

import (
	"embed"
	"io"
	"io/fs"

	"github.com/arthur-debert/cmdmatch/pkg/cobrax/topics"
	"github.com/arthur-debert/cmdmatch/pkg/style"
)

//go:embed topics/*.md topics/*.txt
var topicFiles embed.FS

// topicFS returns the embedded help topics rooted at the topics directory
func topicFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}

// topicRenderer renders markdown topics through a printer for the
// requested output format. Plain text topics are written as-is.
func topicRenderer(format *string) topics.Renderer {
	return topics.RendererFunc(func(w io.Writer, content, ext string) {
		f, err := style.ParseFormat(*format)
		if err != nil {
			f = style.FormatAuto
		}
		if ext != ".md" {
			f = style.FormatText
		}
		style.NewPrinter(w, f).Markdown(content)
	})
}
