package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLExtractor parses raw HTML pasted into the import dialog. Only
// absolute URLs are kept; relative references have no base to resolve
// against.
type HTMLExtractor struct{}

func init() { RegisterExtractor(&HTMLExtractor{}) }

func (h *HTMLExtractor) Name() string { return "html" }

// CanHandle accepts anything that looks like markup rather than a URL
func (h *HTMLExtractor) CanHandle(source string) bool {
	return strings.Contains(source, "<")
}

// ExtractImageURLs collects the absolute img sources from the document
func (h *HTMLExtractor) ExtractImageURLs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var urls []string
	seen := make(map[string]bool)

	doc.Find("img[src]").Each(func(i int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			return
		}
		if seen[src] {
			return
		}
		seen[src] = true
		urls = append(urls, src)
	})

	return urls, nil
}
