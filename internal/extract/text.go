package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// PageText flattens the markup to readable text: block elements become line
// breaks, script/style/nav/footer subtrees are skipped, and whitespace runs
// collapse. Used to build the model prompt for the LLM extraction assist,
// which wants prose rather than tag soup.
func PageText(markup string) string {
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	flatten(&b, node)
	return tidyLines(b.String())
}

func flatten(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "iframe":
			return
		case "br", "hr", "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}

func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
