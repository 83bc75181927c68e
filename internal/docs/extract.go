package docs

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// extractPDFText pulls the plain text layer out of a PDF. Scanned documents
// have no text layer and yield an empty string.
func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractHTMLText strips chrome elements and returns the page's visible text,
// one line per node.
func extractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, nav, header, footer").Remove()

	var lines []string
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
