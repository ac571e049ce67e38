package scrape

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// TestPageExtractor checks a crawled page yields absolutized image URLs
func TestPageExtractor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
			<img src="/images/one.jpg">
			<img src="two.png">
			<img src="data:image/gif;base64,R0lGOD">
			<a href="/files/three.webp">download</a>
			<a href="/about.html">about</a>
		</body></html>`))
	}))
	defer server.Close()

	urls, err := NewPageExtractor().ExtractImageURLs(server.URL + "/gallery/")
	if err != nil {
		t.Fatalf("ExtractImageURLs failed: %v", err)
	}

	expected := []string{
		server.URL + "/images/one.jpg",
		server.URL + "/gallery/two.png",
		server.URL + "/files/three.webp",
	}
	if !reflect.DeepEqual(urls, expected) {
		t.Errorf("Expected %v, got %v", expected, urls)
	}
}

// TestPageExtractorCanHandle checks only http(s) URLs are claimed
func TestPageExtractorCanHandle(t *testing.T) {
	extractor := NewPageExtractor()
	if !extractor.CanHandle("https://example.com/gallery") {
		t.Error("An https URL should be handled")
	}
	if extractor.CanHandle("<html></html>") {
		t.Error("Markup should not be handled")
	}
}

// TestManagerDispatch checks the façade routes to the right extractor
func TestManagerDispatch(t *testing.T) {
	manager := NewManager()

	urls, err := manager.ExtractImageURLs(`<img src="https://example.com/a.jpg">`)
	if err != nil {
		t.Fatalf("ExtractImageURLs failed: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://example.com/a.jpg" {
		t.Errorf("Expected the pasted-HTML path, got %v", urls)
	}

	if _, err := manager.ExtractImageURLs("plain text, neither URL nor markup"); err == nil {
		t.Error("Expected an error for unhandled input")
	}
}

// TestManagerNoImages checks an empty result is reported as an error
func TestManagerNoImages(t *testing.T) {
	manager := NewManager()
	if _, err := manager.ExtractImageURLs("<html><body>no pictures here</body></html>"); err == nil {
		t.Error("Expected an error when a page has no images")
	}
}
