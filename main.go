package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"imagecycler/cycle"
	"imagecycler/fetch"
	"imagecycler/models"
	"imagecycler/notify"
	"imagecycler/scrape"
	"imagecycler/storage"
	"imagecycler/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appID = "com.github.imagecycler"

func main() {
	// Check for command-line arguments
	if len(os.Args) > 1 {
		handleCommandLineArgs()
		return
	}

	// Normal GUI mode
	log.Println("Starting Image Cycler...")

	fyneApp := app.NewWithID(appID)

	store := storage.NewManager(fyneApp.Preferences())
	if err := store.EnsureDefaults(); err != nil {
		log.Printf("Warning: could not write default settings: %v", err)
	}

	viewers := ui.NewViewerManager(fyneApp, fetch.NewFetcher())
	notifier := notify.NewFyneNotifier(fyneApp)
	controller := cycle.NewController(store, viewers, notifier)

	settingsWindow := ui.NewSettingsWindow(fyneApp, controller, store, scrape.NewManager())

	go controller.Run()
	registerTrayCommand(fyneApp, settingsWindow, viewers)

	settingsWindow.Show()
	fyneApp.Run()

	// Teardown: the timer is the only long-lived resource the controller
	// holds. Persisted settings survive across sessions.
	controller.Close()
}

// registerTrayCommand registers the user-invocable commands in the
// system tray. On platforms without a tray the settings window itself
// is the only entry point.
func registerTrayCommand(fyneApp fyne.App, settingsWindow *ui.SettingsWindow, viewers *ui.ViewerManager) {
	desk, ok := fyneApp.(desktop.App)
	if !ok {
		return
	}

	menu := fyne.NewMenu("Image Cycler",
		fyne.NewMenuItem("Open Settings", func() {
			settingsWindow.Show()
		}),
		fyne.NewMenuItem("Close Viewers", func() {
			viewers.CloseAll()
		}),
	)
	desk.SetSystemTrayMenu(menu)
}

// handleCommandLineArgs processes command-line arguments
func handleCommandLineArgs() {
	args := os.Args[1:]

	switch args[0] {
	case "-list", "--list":
		listImages()
	case "-show", "--show":
		showRandomURL()
	case "-help", "--help", "-h", "--h":
		showUsage()
	default:
		fmt.Printf("Unknown option: %s\n", args[0])
		showUsage()
	}
}

// listImages prints the configured image URLs and interval
func listImages() {
	settings, err := loadConsoleSettings()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		return
	}

	if !settings.HasImages() {
		fmt.Println("No image URLs configured.")
		return
	}

	fmt.Println("Configured images:")
	fmt.Println("==================")
	for i, url := range settings.ImageURLs {
		fmt.Printf("%d. %s\n", i+1, url)
	}
	fmt.Printf("\nInterval: %d minute(s)\n", settings.IntervalMinutes)
}

// showRandomURL prints one uniformly random URL from the configured list
func showRandomURL() {
	settings, err := loadConsoleSettings()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		return
	}

	if !settings.HasImages() {
		fmt.Println("No image URLs configured.")
		return
	}

	fmt.Println(settings.ImageURLs[rand.Intn(len(settings.ImageURLs))])
}

// loadConsoleSettings opens the preference store without starting the GUI
func loadConsoleSettings() (*models.Settings, error) {
	fyneApp := app.NewWithID(appID)
	return storage.NewManager(fyneApp.Preferences()).LoadSettings()
}

// showUsage displays command-line usage information
func showUsage() {
	fmt.Println("Image Cycler - Command Line Usage")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("GUI Mode (default):")
	fmt.Println("  imagecycler")
	fmt.Println()
	fmt.Println("Command Line Options:")
	fmt.Println("  -list              List the configured image URLs")
	fmt.Println("  -show              Print one random URL from the list")
	fmt.Println("  -help              Show this help message")
}
