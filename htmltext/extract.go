// Package htmltext extracts the visible text of an HTML document so that it
// can be classified by script.
package htmltext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML from r and returns its visible text. Content of
// script, style and other non-text elements is dropped. Block elements are
// separated by a space and <br> becomes a newline.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	root := findElement(doc, "body")
	if root == nil {
		// No body tag, use the whole tree
		root = doc
	}
	return textContent(root), nil
}

// ExtractString is Extract for an in-memory document.
func ExtractString(s string) (string, error) {
	return Extract(strings.NewReader(s))
}

// shouldSkipElement returns true if the element never holds visible text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	writeText(n, &b)
	return strings.TrimSpace(b.String())
}

func writeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.CommentNode:
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, b)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "td", "th", "blockquote", "pre":
			b.WriteString(" ")
		}
	}
}
