package retrieval

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var (
	reSpaces   = regexp.MustCompile(`[ \t]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
)

// CleanBasic normalizes whitespace and strips control characters from a
// retrieved snippet before it is injected into a prompt.
func CleanBasic(text string) string {
	if text == "" {
		return ""
	}

	// remove control chars except newline and tab; tab runs collapse to a
	// single space below
	b := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)

	b = reSpaces.ReplaceAllString(b, " ")
	b = reNewlines.ReplaceAllString(b, "\n\n")

	return strings.TrimSpace(b)
}

// HTMLToText extracts readable content from an HTML fact, keeping headings,
// paragraphs and list items. Knowledge bases that serve HTML snippets run
// through this before prompt injection.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	var out []string
	doc.Find("h1,h2,h3,p,li").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			out = append(out, "# "+text)
		case "h2":
			out = append(out, "## "+text)
		case "h3":
			out = append(out, "### "+text)
		case "li":
			out = append(out, "- "+text)
		default:
			out = append(out, text)
		}
	})

	return strings.Join(out, "\n"), nil
}

// CleanFact runs the full hygiene pipeline over a retrieved fact. Plain text
// passes through whitespace normalization only; anything that parses as HTML
// with markup is flattened first.
func CleanFact(raw string) string {
	if strings.Contains(raw, "<") && strings.Contains(raw, ">") {
		if text, err := HTMLToText(raw); err == nil && text != "" {
			return CleanBasic(text)
		}
	}
	return CleanBasic(raw)
}
