package docsource

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML reduces an HTML certificate page to readable plain text. It
// prefers <main> or <article>, falling back to <body>, keeps block structure
// as line breaks (the standards extractor is line-oriented), and skips
// script/style/nav chrome.
func FromHTML(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	if content == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, content)
	return normalizeWhitespace(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "br", "hr", "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "div":
			b.WriteString("\n")
		case "td", "th":
			b.WriteString(" ")
		}
	}
	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		b.WriteString(strings.ReplaceAll(data, "\r", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "div":
			b.WriteString("\n")
		}
	}
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, collapseSpaces(trimmed))
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return b.String()
}
