package blog

import (
	"html"
	"net/url"
	"strings"
)

// Block is a portable-text block
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
	// image blocks
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Span is an inline run of text with decorators and annotation keys
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced from span marks
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

var blockTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"blockquote": "blockquote",
}

var decoratorTags = map[string]string{
	"strong":    "strong",
	"em":        "em",
	"code":      "code",
	"underline": "u",
}

var (
	linkSchemes  = map[string]bool{"http": true, "https": true, "mailto": true}
	imageSchemes = map[string]bool{"http": true, "https": true}
)

// allowedURL accepts relative URLs and absolute ones in schemes. Anything
// else renders as plain text.
func allowedURL(raw string, schemes map[string]bool) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" || schemes[u.Scheme]
}

// RenderHTML renders blocks to HTML. Consecutive list items are grouped
// into ul/ol elements. Unknown block types are skipped.
func RenderHTML(blocks []Block) string {
	var b strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			b.WriteString("</" + openList + ">")
			openList = ""
		}
	}

	for _, block := range blocks {
		if block.Type == "block" && block.ListItem != "" {
			tag := "ul"
			if block.ListItem == "number" {
				tag = "ol"
			}
			if openList != tag {
				closeList()
				b.WriteString("<" + tag + ">")
				openList = tag
			}
			b.WriteString("<li>")
			renderSpans(&b, block)
			b.WriteString("</li>")
			continue
		}
		closeList()

		switch block.Type {
		case "block":
			tag, ok := blockTags[block.Style]
			if !ok {
				tag = "p"
			}
			b.WriteString("<" + tag + ">")
			renderSpans(&b, block)
			b.WriteString("</" + tag + ">")
		case "image":
			if !allowedURL(block.URL, imageSchemes) {
				continue
			}
			b.WriteString(`<img src="` + html.EscapeString(block.URL) + `" alt="` + html.EscapeString(block.Alt) + `">`)
		}
	}
	closeList()
	return b.String()
}

func renderSpans(b *strings.Builder, block Block) {
	defs := make(map[string]MarkDef, len(block.MarkDefs))
	for _, def := range block.MarkDefs {
		defs[def.Key] = def
	}

	for _, span := range block.Children {
		text := html.EscapeString(span.Text)
		text = strings.ReplaceAll(text, "\n", "<br>")
		// marks apply innermost first so the first mark is the outermost tag
		for i := len(span.Marks) - 1; i >= 0; i-- {
			mark := span.Marks[i]
			if tag, ok := decoratorTags[mark]; ok {
				text = "<" + tag + ">" + text + "</" + tag + ">"
				continue
			}
			if def, ok := defs[mark]; ok && def.Type == "link" && allowedURL(def.Href, linkSchemes) {
				text = `<a href="` + html.EscapeString(def.Href) + `">` + text + "</a>"
			}
		}
		b.WriteString(text)
	}
}
