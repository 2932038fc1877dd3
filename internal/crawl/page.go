package crawl

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// skipTags are elements that never contain syllabus content.
var skipTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
	"form":   true,
	"iframe": true,
	"button": true,
}

// promoTokens flag elements that are promotional page furniture: course
// advertisements, subscription prompts, related-content rails.
var promoTokens = []string{
	"promo", "advert", "sponsor", "banner", "subscribe",
	"related", "sidebar", "popup", "cta", "cookie",
}

// readableText reduces an HTML page to its readable text: headings,
// paragraphs, list items, and table cells, with promotional and
// navigational elements dropped.
func readableText(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipTags[n.Data] || isPromotional(n) {
				return
			}
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "th", "blockquote", "dt", "dd":
				if t := elementText(n); t != "" {
					blocks = append(blocks, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(blocks, "\n"), nil
}

// isPromotional reports whether an element's class or id names it as
// promotional furniture.
func isPromotional(n *html.Node) bool {
	var marker string
	for _, a := range n.Attr {
		if a.Key == "class" || a.Key == "id" {
			marker += " " + strings.ToLower(a.Val)
		}
	}
	if marker == "" {
		return false
	}
	for _, tok := range promoTokens {
		if strings.Contains(marker, tok) {
			return true
		}
	}
	return false
}

func elementText(n *html.Node) string {
	var buf strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (skipTags[n.Data] || isPromotional(n)) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
