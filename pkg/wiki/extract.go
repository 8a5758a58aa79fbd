package wiki

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nonContentSelectors are removed from rendered page HTML before text
// extraction: references, navboxes, edit links, infoboxes, scripts, and
// reference superscripts.
var nonContentSelectors = []string{
	"script",
	"style",
	"sup.reference",
	"sup.noprint",
	"span.mw-editsection",
	"div.reflist",
	"ol.references",
	"div.navbox",
	"table.navbox",
	"table.infobox",
	"table.sidebar",
	"table.metadata",
	"div.thumb",
	"figure",
	"div.hatnote",
	"div.shortdescription",
	"div#toc",
	"div.toc",
	"span.mw-cite-backlink",
	"div.printfooter",
	"div.catlinks",
}

// ExtractArticleText parses rendered MediaWiki HTML and emits plain text:
// the main content container is located, known non-content elements are
// removed, and block elements are joined with newlines.
func ExtractArticleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	content := doc.Find("div.mw-parser-output").First()
	if content.Length() == 0 {
		content = doc.Selection
	}

	for _, sel := range nonContentSelectors {
		content.Find(sel).Remove()
	}

	var b strings.Builder
	content.Find("p, h2, h3, h4, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		b.WriteString(text)
		b.WriteByte('\n')
	})

	out := strings.TrimSpace(b.String())
	if out == "" {
		// Fallback: whole-container text for pages with unusual markup.
		out = strings.TrimSpace(content.Text())
	}
	return collapseBlankLines(out), nil
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
