package cycle

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"imagecycler/models"
)

// Controller failure classes. All of them surface as notifications and
// leave the controller state untouched.
var (
	ErrNoImages       = errors.New("image list is empty")
	ErrAlreadyRunning = errors.New("cycle is already running")
	ErrNotRunning     = errors.New("no cycle is running")
)

// Presenter opens a display surface for a single image URL
type Presenter interface {
	ShowImage(url string)
}

// Notifier delivers short user-facing messages in three severities
type Notifier interface {
	Info(title, message string)
	Warning(title, message string)
	Error(title, message string)
}

// SettingsStore loads and saves the persisted settings
type SettingsStore interface {
	LoadSettings() (*models.Settings, error)
	SaveSettings(settings *models.Settings) error
}

// Controller owns the single repeating cycle timer. All mutable state is
// confined to the dispatcher goroutine started by Run, so no locking is
// needed: commands and ticks are handled strictly one at a time.
type Controller struct {
	store     SettingsStore
	presenter Presenter
	notifier  Notifier
	randFn    func(n int) int

	commands chan Command
	quit     chan struct{}
	done     chan struct{}
	onState  func(running bool)

	ticker *time.Ticker     // nil while no cycle is active
	tickC  <-chan time.Time // nil channel blocks the tick case while stopped
	urls   []string         // list snapshot taken when the cycle started
}

// NewController creates a controller wired to the given collaborators
func NewController(store SettingsStore, presenter Presenter, notifier Notifier) *Controller {
	return &Controller{
		store:     store,
		presenter: presenter,
		notifier:  notifier,
		randFn:    rand.Intn,
		commands:  make(chan Command, 16),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// SetStateListener registers a callback fired whenever the cycle starts
// or stops. Must be set before Run.
func (c *Controller) SetStateListener(fn func(running bool)) {
	c.onState = fn
}

// Post queues a command for the dispatcher loop
func (c *Controller) Post(cmd Command) {
	select {
	case c.commands <- cmd:
	case <-c.quit:
	}
}

// Run consumes commands and timer ticks until Close is called.
// It is meant to run on its own goroutine.
func (c *Controller) Run() {
	defer close(c.done)

	for {
		select {
		case cmd := <-c.commands:
			c.dispatch(cmd)
		case <-c.tickC:
			c.showRandomImage(c.urls)
		case <-c.quit:
			c.releaseTimer()
			return
		}
	}
}

// Close cancels the active timer, if any, and stops the dispatcher loop.
// Persisted settings and open viewers are left alone.
func (c *Controller) Close() {
	close(c.quit)
	<-c.done
}

// dispatch routes one command to its handler
func (c *Controller) dispatch(cmd Command) {
	switch cmd := cmd.(type) {
	case SaveSettings:
		c.saveSettings(cmd.Settings)
	case StartCycle:
		c.startCycle()
	case StopCycle:
		c.stopCycle()
	default:
		log.Printf("cycle: ignoring unknown command %T", cmd)
	}
}

// saveSettings persists the given settings verbatim (full replace)
func (c *Controller) saveSettings(settings *models.Settings) error {
	if err := c.store.SaveSettings(settings); err != nil {
		c.notifier.Error("Save Failed", err.Error())
		return err
	}
	c.notifier.Info("Settings Saved", "Image cycle settings have been updated.")
	return nil
}

// startCycle arms the repeating timer and shows a first image right away
func (c *Controller) startCycle() error {
	if c.ticker != nil {
		c.notifier.Warning("Cycle Already Running", "Stop the current cycle before starting a new one.")
		return ErrAlreadyRunning
	}

	settings, err := c.store.LoadSettings()
	if err != nil {
		c.notifier.Error("Cannot Start Cycle", err.Error())
		return err
	}

	if !settings.HasImages() {
		c.notifier.Error("Cannot Start Cycle", "The image list is empty. Add at least one image URL in the settings.")
		return ErrNoImages
	}

	interval := settings.IntervalMinutes
	if interval < 1 {
		// Stored value predates interval validation; never arm a
		// sub-minute or non-positive timer.
		log.Printf("cycle: clamping invalid interval %d to 1 minute", interval)
		interval = 1
	}

	c.urls = settings.ImageURLs
	c.showRandomImage(c.urls)

	c.ticker = time.NewTicker(time.Duration(interval) * time.Minute)
	c.tickC = c.ticker.C

	c.notifier.Info("Cycle Started", fmt.Sprintf("Showing a new image every %d minute(s).", interval))
	c.notifyState(true)
	return nil
}

// stopCycle cancels the active timer and clears the handle
func (c *Controller) stopCycle() error {
	if c.ticker == nil {
		c.notifier.Warning("No Cycle Running", "There is no image cycle to stop.")
		return ErrNotRunning
	}

	c.releaseTimer()
	c.notifier.Info("Cycle Stopped", "The image cycle has been stopped.")
	c.notifyState(false)
	return nil
}

// showRandomImage picks one URL uniformly at random and displays it.
// Draws are independent, so repeats are allowed.
func (c *Controller) showRandomImage(urls []string) {
	if len(urls) == 0 {
		return
	}
	c.presenter.ShowImage(urls[c.randFn(len(urls))])
}

// releaseTimer stops and clears the timer handle if one exists
func (c *Controller) releaseTimer() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
		c.tickC = nil
		c.urls = nil
	}
}

// notifyState informs the registered listener, if any
func (c *Controller) notifyState(running bool) {
	if c.onState != nil {
		c.onState(running)
	}
}

// running reports whether a cycle is active. Only safe from the
// dispatcher goroutine or before Run starts; tests use it.
func (c *Controller) running() bool {
	return c.ticker != nil
}
