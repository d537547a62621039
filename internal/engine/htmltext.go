package engine

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// LooksLikeHTML reports whether s appears to be markup rather than
// plain text. Job postings pasted from boards usually arrive as HTML.
func LooksLikeHTML(s string) bool {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "<!DOCTYPE") || strings.HasPrefix(t, "<!doctype") {
		return true
	}
	for _, tag := range []string{"<html", "<body", "<div", "<p>", "<br", "<ul", "<li", "<h1", "<h2", "<span"} {
		if strings.Contains(t, tag) {
			return true
		}
	}
	return false
}

// HTMLToText converts markup to readable plain text. Markdown
// conversion preserves list and heading structure that matters for
// section carving; a DOM text walk is the fallback for markup the
// converter rejects.
func HTMLToText(s string) string {
	if !LooksLikeHTML(s) {
		return s
	}
	if md, err := htmltomarkdown.ConvertString(s); err == nil {
		return strings.TrimSpace(stripMarkdownMarks(md))
	}
	return strings.TrimSpace(extractNodeText(s))
}

// stripMarkdownMarks removes the markdown decoration the converter
// emits while keeping line structure intact.
func stripMarkdownMarks(md string) string {
	var sb strings.Builder
	for _, line := range strings.Split(md, "\n") {
		t := strings.TrimSpace(line)
		t = strings.TrimLeft(t, "#")
		t = strings.TrimSpace(strings.TrimLeft(t, "-*+ "))
		t = strings.ReplaceAll(t, "**", "")
		sb.WriteString(t)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// extractNodeText walks the DOM collecting text nodes, skipping
// script and style subtrees.
func extractNodeText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				sb.WriteString(t)
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}
