package normalize

import (
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	spaceRun = regexp.MustCompile(`[ \t\f\r]+`)
	blankRun = regexp.MustCompile(`\n{3,}`)
)

// block elements start on a new line
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "table": true, "blockquote": true, "pre": true,
	"hr": true,
}

// HTMLToText reduces an HTML fragment (Aha! descriptions, Confluence storage
// format) to plain text. Block elements become line breaks, list items are
// prefixed with "- ", and script/style content is dropped. Input that does
// not look like HTML is returned trimmed.
func HTMLToText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return tidy(b.String())
		case html.TextToken:
			if skip == 0 {
				b.WriteString(strings.ReplaceAll(string(z.Text()), "\n", " "))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case tag == "script" || tag == "style":
				skip++
			case tag == "li":
				b.WriteString("\n- ")
			case tag == "td" || tag == "th":
				b.WriteString(" ")
			case blockElements[tag]:
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case tag == "script" || tag == "style":
				if skip > 0 {
					skip--
				}
			case tag == "li" || tag == "br" || tag == "hr":
			case blockElements[tag]:
				b.WriteString("\n")
			}
		}
	}
}

func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	out := strings.Join(lines, "\n")
	out = blankRun.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text"`
	Content []adfNode `json:"content"`
}

// ADFToText extracts the text of an Atlassian Document Format document, one
// line per top-level block. Input that is not an ADF document is returned as is.
func ADFToText(raw string) string {
	var doc adfNode
	if err := json.Unmarshal([]byte(raw), &doc); err != nil || doc.Type != "doc" {
		return raw
	}
	var parts []string
	for _, block := range doc.Content {
		var b strings.Builder
		collectADF(&b, block)
		if line := strings.TrimSpace(b.String()); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

func collectADF(b *strings.Builder, n adfNode) {
	switch n.Type {
	case "text":
		b.WriteString(n.Text)
	case "hardBreak":
		b.WriteString("\n")
	case "listItem":
		b.WriteString("\n- ")
	}
	for _, child := range n.Content {
		collectADF(b, child)
	}
}
