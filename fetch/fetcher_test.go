package fetch

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// encodePNG builds a small in-memory PNG for the test servers
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// TestFetchImageHTTP checks a well-formed image downloads and decodes
func TestFetchImageHTTP(t *testing.T) {
	data := encodePNG(t, 10, 5)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer server.Close()

	img, err := NewFetcher().FetchImage(server.URL + "/test.png")
	if err != nil {
		t.Fatalf("FetchImage failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 5 {
		t.Errorf("Expected a 10x5 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

// TestFetchImageHTMLBody checks an error page served with status 200 is
// rejected instead of being fed to the decoder
func TestFetchImageHTMLBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not found</body></html>"))
	}))
	defer server.Close()

	if _, err := NewFetcher().FetchImage(server.URL); err == nil {
		t.Error("Expected an error for an HTML response body")
	}
}

// TestFetchImageBadStatus checks non-200 responses fail
func TestFetchImageBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := NewFetcher().FetchImage(server.URL); err == nil {
		t.Error("Expected an error for a 404 response")
	}
}

// TestFetchImageLocalFile checks file:// URLs are read from disk
func TestFetchImageLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, encodePNG(t, 8, 8), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	img, err := NewFetcher().FetchImage("file://" + filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("FetchImage failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Expected an 8x8 image, got %v", img.Bounds())
	}
}

// TestFetchImageEmptyURL checks the trivial guard
func TestFetchImageEmptyURL(t *testing.T) {
	if _, err := NewFetcher().FetchImage(""); err == nil {
		t.Error("Expected an error for an empty URL")
	}
}

// TestPlaceholder checks the fallback image exists and has a usable size
func TestPlaceholder(t *testing.T) {
	img := Placeholder()
	if img == nil {
		t.Fatal("Placeholder should not be nil")
	}
	bounds := img.Bounds()
	if bounds.Dx() != 640 || bounds.Dy() != 360 {
		t.Errorf("Expected a 640x360 placeholder, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
