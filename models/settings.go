package models

// Settings represents the persisted application settings
type Settings struct {
	ImageURLs       []string `json:"image_urls"`       // ordered list of image URLs to cycle through
	IntervalMinutes int      `json:"interval_minutes"` // minutes between image changes, minimum 1
}

// DefaultSettings returns the built-in settings used on first run
func DefaultSettings() *Settings {
	return &Settings{
		ImageURLs: []string{
			"https://picsum.photos/seed/aurora/1920/1080",
			"https://picsum.photos/seed/canyon/1920/1080",
			"https://picsum.photos/seed/forest/1920/1080",
			"https://picsum.photos/seed/harbor/1920/1080",
			"https://picsum.photos/seed/meadow/1920/1080",
			"https://picsum.photos/seed/summit/1920/1080",
		},
		IntervalMinutes: 4,
	}
}

// Clone returns a deep copy so callers can edit without touching the original
func (s *Settings) Clone() *Settings {
	urls := make([]string, len(s.ImageURLs))
	copy(urls, s.ImageURLs)
	return &Settings{
		ImageURLs:       urls,
		IntervalMinutes: s.IntervalMinutes,
	}
}

// HasImages reports whether there is at least one URL to cycle through
func (s *Settings) HasImages() bool {
	return len(s.ImageURLs) > 0
}
