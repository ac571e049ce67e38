package storage

import (
	"encoding/json"
	"fmt"

	"imagecycler/models"
)

// settingsKey is the preference key the settings JSON blob is stored under
const settingsKey = "settings"

// Store is the subset of fyne.Preferences the settings manager needs.
// fyne.App.Preferences() satisfies it; tests use an in-memory map.
type Store interface {
	String(key string) string
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
}

// Manager handles settings persistence through the host key-value store
type Manager struct {
	store Store
}

// NewManager creates a new storage manager on top of a key-value store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// LoadSettings loads the settings, falling back to the built-in defaults
// when nothing has been persisted yet
func (m *Manager) LoadSettings() (*models.Settings, error) {
	data := m.store.StringWithFallback(settingsKey, "")
	if data == "" {
		return models.DefaultSettings(), nil
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return nil, fmt.Errorf("failed to parse stored settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings persists the given settings verbatim, replacing any
// previously stored value
func (m *Manager) SaveSettings(settings *models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	m.store.SetString(settingsKey, string(data))
	return nil
}

// EnsureDefaults writes the built-in defaults on first activation only.
// An existing value, modified or not, is never overwritten.
func (m *Manager) EnsureDefaults() error {
	if m.store.String(settingsKey) != "" {
		return nil
	}
	return m.SaveSettings(models.DefaultSettings())
}
