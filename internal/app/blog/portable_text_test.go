package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func span(text string, marks ...string) Span {
	return Span{Type: "span", Text: text, Marks: marks}
}

func TestRenderHTML_Styles(t *testing.T) {
	blocks := []Block{
		{Type: "block", Style: "h2", Children: []Span{span("Why captions matter")}},
		{Type: "block", Style: "normal", Children: []Span{span("Plain "), span("bold", "strong"), span(" and "), span("code", "code")}},
		{Type: "block", Style: "blockquote", Children: []Span{span("Quote")}},
		{Type: "block", Style: "mystery", Children: []Span{span("fallback")}},
	}
	assert.Equal(t,
		"<h2>Why captions matter</h2>"+
			"<p>Plain <strong>bold</strong> and <code>code</code></p>"+
			"<blockquote>Quote</blockquote>"+
			"<p>fallback</p>",
		RenderHTML(blocks))
}

func TestRenderHTML_NestedMarksAndLinks(t *testing.T) {
	blocks := []Block{{
		Type:     "block",
		Style:    "normal",
		MarkDefs: []MarkDef{{Key: "l1", Type: "link", Href: "https://example.com/?a=1&b=2"}},
		Children: []Span{span("read this", "l1", "em")},
	}}
	assert.Equal(t, `<p><a href="https://example.com/?a=1&amp;b=2"><em>read this</em></a></p>`, RenderHTML(blocks))
}

func TestRenderHTML_Lists(t *testing.T) {
	blocks := []Block{
		{Type: "block", ListItem: "bullet", Children: []Span{span("one")}},
		{Type: "block", ListItem: "bullet", Children: []Span{span("two")}},
		{Type: "block", ListItem: "number", Children: []Span{span("first")}},
		{Type: "block", Style: "normal", Children: []Span{span("after")}},
		{Type: "block", ListItem: "bullet", Children: []Span{span("tail")}},
	}
	assert.Equal(t,
		"<ul><li>one</li><li>two</li></ul>"+
			"<ol><li>first</li></ol>"+
			"<p>after</p>"+
			"<ul><li>tail</li></ul>",
		RenderHTML(blocks))
}

func TestRenderHTML_EscapesText(t *testing.T) {
	blocks := []Block{{Type: "block", Style: "normal", Children: []Span{span("<script>alert(1)</script>\nnext")}}}
	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt;<br>next</p>", RenderHTML(blocks))
}

func TestRenderHTML_ImagesAndUnknownTypes(t *testing.T) {
	blocks := []Block{
		{Type: "image", URL: "https://cdn.example.com/a.png", Alt: `a "quoted" alt`},
		{Type: "image"},
		{Type: "code", Children: []Span{span("ignored")}},
	}
	assert.Equal(t, `<img src="https://cdn.example.com/a.png" alt="a &#34;quoted&#34; alt">`, RenderHTML(blocks))
}

func TestRenderHTML_UnsafeURLs(t *testing.T) {
	link := func(href string) []Block {
		return []Block{{
			Type:     "block",
			Style:    "normal",
			Children: []Span{span("click", "l1")},
			MarkDefs: []MarkDef{{Key: "l1", Type: "link", Href: href}},
		}}
	}

	tests := []struct {
		name string
		href string
		want string
	}{
		{name: "javascript", href: "javascript:alert(document.cookie)", want: "<p>click</p>"},
		{name: "javascript upper case", href: "JavaScript:alert(1)", want: "<p>click</p>"},
		{name: "data", href: "data:text/html;base64,PHNjcmlwdD4=", want: "<p>click</p>"},
		{name: "control character", href: "java\tscript:alert(1)", want: "<p>click</p>"},
		{name: "https", href: "https://example.com", want: `<p><a href="https://example.com">click</a></p>`},
		{name: "mailto", href: "mailto:hi@example.com", want: `<p><a href="mailto:hi@example.com">click</a></p>`},
		{name: "relative", href: "/blog/other-post", want: `<p><a href="/blog/other-post">click</a></p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderHTML(link(tt.href)))
		})
	}
}

func TestRenderHTML_UnsafeImageSources(t *testing.T) {
	blocks := []Block{
		{Type: "image", URL: "javascript:alert(1)", Alt: "x"},
		{Type: "image", URL: "mailto:hi@example.com", Alt: "x"},
		{Type: "image", URL: "/media/a.png", Alt: "local"},
	}
	assert.Equal(t, `<img src="/media/a.png" alt="local">`, RenderHTML(blocks))
}
