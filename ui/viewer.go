package ui

import (
	"image/color"
	"log"
	"sync"

	"imagecycler/fetch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/google/uuid"
)

// ViewerManager opens a fresh full-screen window for every displayed
// image and keeps track of the ones still open. Earlier viewers are not
// reused or closed automatically; the user closes them (Escape key or
// window close), and CloseAll sweeps the rest on application exit.
type ViewerManager struct {
	app     fyne.App
	fetcher *fetch.Fetcher

	mu   sync.Mutex
	open map[string]fyne.Window // keyed by viewer ID
}

// NewViewerManager creates a viewer manager
func NewViewerManager(app fyne.App, fetcher *fetch.Fetcher) *ViewerManager {
	return &ViewerManager{
		app:     app,
		fetcher: fetcher,
		open:    make(map[string]fyne.Window),
	}
}

// ShowImage downloads the image and presents it in a new full-screen
// viewer. A URL that cannot be fetched or decoded degrades to the
// built-in placeholder instead of failing the cycle.
func (v *ViewerManager) ShowImage(url string) {
	img, err := v.fetcher.FetchImage(url)
	if err != nil {
		log.Printf("viewer: falling back to placeholder for %s: %v", url, err)
		img = fetch.Placeholder()
	}

	id := uuid.New().String()

	window := v.app.NewWindow("Image Cycler")
	window.SetPadded(false)

	imageCanvas := canvas.NewImageFromImage(img)
	imageCanvas.FillMode = canvas.ImageFillContain

	background := canvas.NewRectangle(color.Black)
	window.SetContent(container.NewStack(background, imageCanvas))

	window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			window.Close()
		}
	})
	window.SetOnClosed(func() {
		v.forget(id)
	})

	v.track(id, window)

	window.SetFullScreen(true)
	window.Show()
}

// CloseAll closes every viewer that is still open
func (v *ViewerManager) CloseAll() {
	v.mu.Lock()
	windows := make([]fyne.Window, 0, len(v.open))
	for _, w := range v.open {
		windows = append(windows, w)
	}
	v.open = make(map[string]fyne.Window)
	v.mu.Unlock()

	for _, w := range windows {
		w.Close()
	}
}

// OpenCount returns the number of viewers currently open
func (v *ViewerManager) OpenCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.open)
}

func (v *ViewerManager) track(id string, w fyne.Window) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open[id] = w
}

func (v *ViewerManager) forget(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.open, id)
}
