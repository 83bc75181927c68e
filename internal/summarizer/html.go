package summarizer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; line-height: 1.6; }
h1 { color: #1a365d; border-bottom: 2px solid #2c5282; padding-bottom: 10px; }
h2 { color: #2c5282; margin-top: 30px; }
ul { margin: 10px 0; }
li { margin: 5px 0; }
blockquote { border-left: 4px solid #cbd5e0; margin: 15px 0; padding-left: 15px; color: #4a5568; font-style: italic; }
</style>
</head>
<body>
<h1>%s</h1>
%s</body>
</html>
`

// RenderHTML converts the markdown summary into a standalone HTML page at
// htmlPath.
func (s *implSummarizer) RenderHTML(title, summary, htmlPath string) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(summary), &body); err != nil {
		return fmt.Errorf("render summary markdown: %w", err)
	}

	escaped := html.EscapeString(title)
	page := fmt.Sprintf(htmlPage, escaped, escaped, body.String())

	if err := s.store.WriteArtifact(htmlPath, []byte(page)); err != nil {
		return fmt.Errorf("save HTML summary: %w", err)
	}
	return nil
}
