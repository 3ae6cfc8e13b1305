package documents

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLText returns the visible text of an HTML document. Block elements end
// a line so that numbered clauses keep their own lines.
func HTMLText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var traverse func(n *html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Head, atom.Noscript:
				return
			case atom.Br:
				b.WriteString("\n")
				return
			}
		}
		if n.Type == html.TextNode {
			writeText(&b, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
		if n.Type == html.ElementNode && isBlock(n.DataAtom) {
			b.WriteString("\n")
		}
	}
	traverse(doc)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// writeText folds source line breaks into spaces. Edge whitespace is kept as
// a single space so inline elements stay separated; runs are collapsed later.
func writeText(b *strings.Builder, s string) {
	text := strings.Join(strings.Fields(s), " ")
	if text == "" {
		if s != "" {
			b.WriteString(" ")
		}
		return
	}
	if unicode.IsSpace(rune(s[0])) {
		b.WriteString(" ")
	}
	b.WriteString(text)
	if unicode.IsSpace(rune(s[len(s)-1])) {
		b.WriteString(" ")
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Li, atom.Tr,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Pre, atom.Table, atom.Ul, atom.Ol:
		return true
	}
	return false
}
