package scrape

import (
	"reflect"
	"testing"
)

// TestHTMLExtractor checks absolute img sources are collected in order,
// once each, and relative ones are dropped
func TestHTMLExtractor(t *testing.T) {
	html := `<html><body>
		<img src="https://example.com/one.jpg">
		<img src="/relative/two.jpg">
		<img src="https://example.com/three.png">
		<img src="https://example.com/one.jpg">
	</body></html>`

	urls, err := (&HTMLExtractor{}).ExtractImageURLs(html)
	if err != nil {
		t.Fatalf("ExtractImageURLs failed: %v", err)
	}

	expected := []string{
		"https://example.com/one.jpg",
		"https://example.com/three.png",
	}
	if !reflect.DeepEqual(urls, expected) {
		t.Errorf("Expected %v, got %v", expected, urls)
	}
}

// TestHTMLExtractorCanHandle checks markup is claimed and URLs are not
func TestHTMLExtractorCanHandle(t *testing.T) {
	extractor := &HTMLExtractor{}
	if !extractor.CanHandle("<html><img src='x'></html>") {
		t.Error("Markup should be handled")
	}
	if extractor.CanHandle("https://example.com/gallery") {
		t.Error("A bare URL should not be handled")
	}
}

// TestHasImageExtension checks direct-link detection
func TestHasImageExtension(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/a.jpg":        true,
		"https://example.com/a.PNG":        true,
		"https://example.com/a.webp?w=800": true,
		"https://example.com/page.html":    false,
		"https://example.com/":             false,
	}
	for link, expected := range cases {
		if hasImageExtension(link) != expected {
			t.Errorf("hasImageExtension(%q) should be %v", link, expected)
		}
	}
}
