package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"imagecycler/cycle"
	"imagecycler/models"
	"imagecycler/scrape"
	"imagecycler/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"
)

// SettingsWindow is the surface where the user edits the image list and
// interval and drives the cycle. Edits happen on a working copy; nothing
// is persisted until Save posts a SaveSettings command.
type SettingsWindow struct {
	app        fyne.App
	window     fyne.Window
	controller *cycle.Controller
	storage    *storage.Manager
	importer   *scrape.Manager

	settings      *models.Settings // working copy being edited
	urlList       *widget.List
	intervalEntry *widget.Entry
	statusLabel   *StatusLabel
}

// NewSettingsWindow creates the settings window (hidden until Show)
func NewSettingsWindow(app fyne.App, controller *cycle.Controller, storageManager *storage.Manager, importer *scrape.Manager) *SettingsWindow {
	window := app.NewWindow("Image Cycler Settings")
	window.Resize(fyne.NewSize(700, 500))

	sw := &SettingsWindow{
		app:        app,
		window:     window,
		controller: controller,
		storage:    storageManager,
		importer:   importer,
	}

	sw.loadSettings()
	sw.setupUI()

	controller.SetStateListener(func(running bool) {
		sw.statusLabel.SetRunning(running)
	})

	// The window outlives individual opens; closing hides it so the
	// tray command can bring it back.
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return sw
}

// Show reloads the persisted settings and presents the window
func (sw *SettingsWindow) Show() {
	sw.loadSettings()
	sw.intervalEntry.SetText(strconv.Itoa(sw.settings.IntervalMinutes))
	sw.urlList.Refresh()
	sw.window.Show()
}

// loadSettings loads a working copy of the persisted settings
func (sw *SettingsWindow) loadSettings() {
	settings, err := sw.storage.LoadSettings()
	if err != nil {
		dialog.ShowError(err, sw.window)
		settings = models.DefaultSettings()
	}
	sw.settings = settings.Clone()
}

// setupUI builds the window content
func (sw *SettingsWindow) setupUI() {
	toolbar := sw.createToolbar()

	sw.urlList = widget.NewList(
		func() int {
			return len(sw.settings.ImageURLs)
		},
		func() fyne.CanvasObject {
			urlLabel := widget.NewLabel("Image URL")
			editBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
			removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			buttons := container.NewHBox(editBtn, removeBtn)
			return container.NewBorder(nil, nil, nil, buttons, urlLabel)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if int(id) >= len(sw.settings.ImageURLs) {
				return // prevent index out of bounds
			}
			url := sw.settings.ImageURLs[id]
			borderContainer := obj.(*fyne.Container)

			if urlLabel, ok := borderContainer.Objects[0].(*widget.Label); ok {
				urlLabel.SetText(sw.truncateText(url, 70))
			}
			if buttons, ok := borderContainer.Objects[1].(*fyne.Container); ok {
				if editBtn, ok := buttons.Objects[0].(*widget.Button); ok {
					editBtn.OnTapped = func() {
						sw.editURL(int(id))
					}
				}
				if removeBtn, ok := buttons.Objects[1].(*widget.Button); ok {
					removeBtn.OnTapped = func() {
						sw.removeURL(int(id))
					}
				}
			}
		},
	)
	sw.intervalEntry = widget.NewEntry()
	sw.intervalEntry.SetText(strconv.Itoa(sw.settings.IntervalMinutes))
	intervalForm := container.NewBorder(nil, nil,
		widget.NewLabel("Interval (minutes)"), nil, sw.intervalEntry)

	sw.statusLabel = NewStatusLabel()

	bottom := container.NewVBox(intervalForm, sw.statusLabel)
	content := container.NewBorder(toolbar, bottom, nil, nil, sw.urlList)
	sw.window.SetContent(content)
}

// createToolbar creates the settings toolbar
func (sw *SettingsWindow) createToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), func() {
			sw.addURL()
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			sw.addLocalFile()
		}),
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			sw.importFromPage()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			sw.save()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPlayIcon(), func() {
			sw.controller.Post(cycle.StartCycle{})
		}),
		widget.NewToolbarAction(theme.MediaStopIcon(), func() {
			sw.controller.Post(cycle.StopCycle{})
		}),
	)
}

// save validates the interval and posts the working copy to the controller
func (sw *SettingsWindow) save() {
	interval, err := strconv.Atoi(strings.TrimSpace(sw.intervalEntry.Text))
	if err != nil || interval < 1 {
		dialog.ShowError(fmt.Errorf("interval must be a whole number of minutes, at least 1"), sw.window)
		return
	}

	sw.settings.IntervalMinutes = interval
	sw.controller.Post(cycle.SaveSettings{Settings: sw.settings.Clone()})
}

// addURL shows a dialog to append a single image URL
func (sw *SettingsWindow) addURL() {
	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://example.com/image.jpg")

	form := dialog.NewForm("Add Image URL", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("URL", urlEntry),
		},
		func(confirm bool) {
			if !confirm {
				return
			}
			url := strings.TrimSpace(urlEntry.Text)
			if url == "" {
				return
			}
			sw.settings.ImageURLs = append(sw.settings.ImageURLs, url)
			sw.urlList.Refresh()
		},
		sw.window)

	form.Resize(fyne.NewSize(500, 150))
	form.Show()
}

// editURL shows a dialog to change the URL at the given index
func (sw *SettingsWindow) editURL(index int) {
	if index < 0 || index >= len(sw.settings.ImageURLs) {
		return
	}

	urlEntry := widget.NewEntry()
	urlEntry.SetText(sw.settings.ImageURLs[index])

	form := dialog.NewForm("Edit Image URL", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("URL", urlEntry),
		},
		func(confirm bool) {
			if !confirm {
				return
			}
			url := strings.TrimSpace(urlEntry.Text)
			if url == "" {
				return
			}
			sw.settings.ImageURLs[index] = url
			sw.urlList.Refresh()
		},
		sw.window)

	form.Resize(fyne.NewSize(500, 150))
	form.Show()
}

// removeURL deletes the URL at the given index from the working copy
func (sw *SettingsWindow) removeURL(index int) {
	if index < 0 || index >= len(sw.settings.ImageURLs) {
		return
	}
	sw.settings.ImageURLs = append(sw.settings.ImageURLs[:index], sw.settings.ImageURLs[index+1:]...)
	sw.urlList.Refresh()
}

// addLocalFile picks an image file with the native dialog and stores it
// as a file:// URL. Falls back to the fyne dialog when zenity is missing.
func (sw *SettingsWindow) addLocalFile() {
	if zenity.IsAvailable() {
		filename, err := zenity.SelectFile(
			zenity.Title("Select Image"),
			zenity.FileFilters{
				{Name: "Image files", Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.avif"}, CaseFold: true},
			},
		)
		if err != nil {
			if err == zenity.ErrCanceled {
				return
			}
			log.Printf("settings: zenity dialog failed, using fyne dialog: %v", err)
			sw.openFyneFileDialog()
			return
		}
		sw.appendLocalFile(filename)
		return
	}

	sw.openFyneFileDialog()
}

// openFyneFileDialog is the fallback file picker
func (sw *SettingsWindow) openFyneFileDialog() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sw.window)
			return
		}
		if reader == nil {
			return // user cancelled
		}
		defer reader.Close()
		sw.appendLocalFile(reader.URI().Path())
	}, sw.window)

	fileDialog.SetFilter(fynestorage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif"}))
	fileDialog.Show()
}

// appendLocalFile adds a picked file to the working copy as a file:// URL
func (sw *SettingsWindow) appendLocalFile(path string) {
	if path == "" {
		return
	}
	sw.settings.ImageURLs = append(sw.settings.ImageURLs, "file://"+filepath.ToSlash(path))
	sw.urlList.Refresh()
}

// importFromPage scrapes image URLs from a page URL or pasted HTML and
// appends them to the working copy
func (sw *SettingsWindow) importFromPage() {
	sourceEntry := widget.NewMultiLineEntry()
	sourceEntry.SetPlaceHolder("Page URL or pasted HTML...")

	form := dialog.NewForm("Import Image URLs", "Import", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Source", sourceEntry),
		},
		func(confirm bool) {
			if !confirm {
				return
			}
			source := strings.TrimSpace(sourceEntry.Text)
			if source == "" {
				return
			}

			// Scraping can take a while; keep the UI responsive.
			go func() {
				urls, err := sw.importer.ExtractImageURLs(source)
				if err != nil {
					dialog.ShowError(fmt.Errorf("import failed: %w", err), sw.window)
					return
				}
				sw.settings.ImageURLs = append(sw.settings.ImageURLs, urls...)
				sw.urlList.Refresh()
				dialog.ShowInformation("Import Complete",
					fmt.Sprintf("Added %d image URL(s) to the list. Remember to save.", len(urls)), sw.window)
			}()
		},
		sw.window)

	form.Resize(fyne.NewSize(600, 300))
	form.Show()
}

// truncateText truncates text for display in the list
func (sw *SettingsWindow) truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength-3] + "..."
}
