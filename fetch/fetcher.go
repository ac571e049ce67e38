package fetch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	// Import decoders for common image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/avif"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// Images larger than a 4K frame are downscaled before display.
const (
	maxWidth  = 3840
	maxHeight = 2160
)

// Fetcher downloads and decodes images for the viewer
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a new image fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchImage retrieves and decodes the image at the given URL.
// file:// URLs are read from disk, everything else goes over HTTP.
func (f *Fetcher) FetchImage(imageURL string) (image.Image, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image url")
	}

	var data []byte
	var err error
	if strings.HasPrefix(imageURL, "file://") {
		data, err = f.readLocal(imageURL)
	} else {
		data, err = f.download(imageURL)
	}
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from %s: %w", imageURL, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
	}

	return img, nil
}

// readLocal loads image bytes from a file:// URL
func (f *Fetcher) readLocal(imageURL string) ([]byte, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid file url %s: %w", imageURL, err)
	}

	data, err := os.ReadFile(u.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", u.Path, err)
	}
	return data, nil
}

// download fetches image bytes over HTTP
func (f *Fetcher) download(imageURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Some hosts answer image URLs with an error page instead of a
	// non-200 status.
	if looksLikeHTML(data) {
		return nil, fmt.Errorf("received HTML page instead of image data from %s", imageURL)
	}

	return data, nil
}

// looksLikeHTML checks whether the payload starts with an HTML document
func looksLikeHTML(data []byte) bool {
	previewLen := 100
	if len(data) < previewLen {
		previewLen = len(data)
	}
	preview := strings.ToLower(string(data[:previewLen]))
	return strings.Contains(preview, "<html") || strings.Contains(preview, "<!doctype")
}

// Placeholder returns the image shown when a URL cannot be fetched or
// decoded. Broken URLs degrade to this instead of failing the cycle.
func Placeholder() image.Image {
	const w, h = 640, 360
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{R: 40, G: 40, B: 44, A: 255}
	border := color.RGBA{R: 90, G: 90, B: 96, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < 4 || y < 4 || x >= w-4 || y >= h-4 {
				img.Set(x, y, border)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}
