package ui

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"imagecycler/fetch"

	"fyne.io/fyne/v2/test"
)

// writeTestImage drops a small PNG into a temp dir and returns its file:// URL
func writeTestImage(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return "file://" + filepath.ToSlash(path)
}

// TestViewerOpensFreshWindows checks every display gets its own surface
func TestViewerOpensFreshWindows(t *testing.T) {
	app := test.NewApp()
	viewers := NewViewerManager(app, fetch.NewFetcher())

	url := writeTestImage(t)
	viewers.ShowImage(url)
	viewers.ShowImage(url)

	if viewers.OpenCount() != 2 {
		t.Errorf("Expected 2 open viewers, got %d", viewers.OpenCount())
	}
}

// TestViewerPlaceholderOnBrokenURL checks a broken URL still opens a
// viewer, showing the placeholder instead of failing
func TestViewerPlaceholderOnBrokenURL(t *testing.T) {
	app := test.NewApp()
	viewers := NewViewerManager(app, fetch.NewFetcher())

	viewers.ShowImage("file:///nonexistent/missing.png")

	if viewers.OpenCount() != 1 {
		t.Errorf("Expected 1 open viewer, got %d", viewers.OpenCount())
	}
}

// TestViewerCloseAll checks the exit sweep empties the registry
func TestViewerCloseAll(t *testing.T) {
	app := test.NewApp()
	viewers := NewViewerManager(app, fetch.NewFetcher())

	url := writeTestImage(t)
	viewers.ShowImage(url)
	viewers.ShowImage(url)
	viewers.CloseAll()

	if viewers.OpenCount() != 0 {
		t.Errorf("Expected no open viewers after CloseAll, got %d", viewers.OpenCount())
	}
}
