package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// PageExtractor crawls a single web page and collects the image URLs it
// references, absolutized against the page location.
type PageExtractor struct {
	timeout time.Duration
}

func init() { RegisterExtractor(NewPageExtractor()) }

// NewPageExtractor creates a page extractor with the default timeout
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{timeout: 30 * time.Second}
}

func (p *PageExtractor) Name() string { return "page" }

// CanHandle accepts http(s) URLs
func (p *PageExtractor) CanHandle(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ExtractImageURLs visits the page and collects img sources plus direct
// links to image files
func (p *PageExtractor) ExtractImageURLs(pageURL string) ([]string, error) {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
	)
	c.SetRequestTimeout(p.timeout)

	var urls []string
	seen := make(map[string]bool)

	collect := func(raw string, e *colly.HTMLElement) {
		if raw == "" || strings.HasPrefix(raw, "data:") {
			return
		}
		abs := e.Request.AbsoluteURL(raw)
		if abs == "" || seen[abs] {
			return
		}
		seen[abs] = true
		urls = append(urls, abs)
	}

	c.OnHTML("img[src]", func(e *colly.HTMLElement) {
		collect(e.Attr("src"), e)
	})
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		if hasImageExtension(e.Attr("href")) {
			collect(e.Attr("href"), e)
		}
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", pageURL, err)
	}
	c.Wait()

	return urls, nil
}

// hasImageExtension checks whether a link points straight at an image file
func hasImageExtension(link string) bool {
	link = strings.ToLower(link)
	if qIndex := strings.Index(link, "?"); qIndex != -1 {
		link = link[:qIndex]
	}
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif"} {
		if strings.HasSuffix(link, ext) {
			return true
		}
	}
	return false
}
