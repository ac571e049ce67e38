package notify

import (
	"log"

	"fyne.io/fyne/v2"
)

// FyneNotifier delivers messages through the desktop notification area.
// It satisfies cycle.Notifier.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier creates a notifier bound to the running application
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

// Info shows an informational message
func (n *FyneNotifier) Info(title, message string) {
	n.send(title, message)
}

// Warning shows a warning message
func (n *FyneNotifier) Warning(title, message string) {
	n.send("Warning: "+title, message)
}

// Error shows an error message
func (n *FyneNotifier) Error(title, message string) {
	n.send("Error: "+title, message)
}

// send is fire and forget; delivery failures are invisible to fyne anyway
func (n *FyneNotifier) send(title, message string) {
	log.Printf("notify: %s - %s", title, message)
	n.app.SendNotification(fyne.NewNotification(title, message))
}
