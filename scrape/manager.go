package scrape

import "fmt"

// Extractor is implemented by any source that can pull image URLs out of
// the supplied input (a page URL, pasted HTML, ...).
type Extractor interface {
	Name() string

	// CanHandle reports whether this extractor understands the input.
	CanHandle(source string) bool

	// ExtractImageURLs returns the image URLs found in the input,
	// in document order, without duplicates.
	ExtractImageURLs(source string) ([]string, error)
}

// global registry that extractors populate from their init() functions.
var registeredExtractors []Extractor

// RegisterExtractor is called by an extractor's init() to make itself available.
func RegisterExtractor(e Extractor) {
	registeredExtractors = append(registeredExtractors, e)
}

// Manager is the façade the settings surface talks to. It forwards the
// input to the first registered extractor that claims it.
type Manager struct {
	extractors []Extractor
}

// NewManager constructs a manager using the registered extractor list
func NewManager() *Manager {
	return &Manager{extractors: registeredExtractors}
}

// ExtractImageURLs asks each extractor in order until one handles the input
func (m *Manager) ExtractImageURLs(source string) ([]string, error) {
	for _, e := range m.extractors {
		if !e.CanHandle(source) {
			continue
		}
		urls, err := e.ExtractImageURLs(source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if len(urls) == 0 {
			return nil, fmt.Errorf("%s: no images found", e.Name())
		}
		return urls, nil
	}
	return nil, fmt.Errorf("no extractor can handle the given input")
}
