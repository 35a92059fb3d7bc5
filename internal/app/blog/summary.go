package blog

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WordsPerMinute is the reading speed used for ReadingMinutes
const WordsPerMinute = 200

// Summary is text derived from rendered post HTML
type Summary struct {
	Excerpt        string   `json:"excerpt"`
	ReadingMinutes int      `json:"reading_minutes"`
	Headings       []string `json:"headings,omitempty"`
}

// Summarize extracts an excerpt of at most maxChars runes from the first
// paragraphs, the reading time and the h2 headings.
func Summarize(htmlBody string, maxChars int) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return Summary{}, err
	}

	words := len(strings.Fields(doc.Text()))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		return len([]rune(strings.Join(paragraphs, " "))) < maxChars
	})

	var headings []string
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			headings = append(headings, text)
		}
	})

	return Summary{
		Excerpt:        truncate(strings.Join(paragraphs, " "), maxChars),
		ReadingMinutes: minutes,
		Headings:       headings,
	}, nil
}

// truncate cuts s at a word boundary so the result plus an ellipsis fits
// in maxChars runes
func truncate(s string, maxChars int) string {
	r := []rune(s)
	if maxChars <= 0 || len(r) <= maxChars {
		return s
	}
	cut := string(r[:maxChars-1])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
