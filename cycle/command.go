package cycle

import "imagecycler/models"

// Command is a message posted from the settings surface to the controller.
// Exactly three variants exist; the dispatcher loop consumes them one at a
// time, so command handling never overlaps with a timer tick.
type Command interface {
	isCommand()
}

// SaveSettings replaces the persisted settings with the carried value
type SaveSettings struct {
	Settings *models.Settings
}

// StartCycle starts the repeating image cycle
type StartCycle struct{}

// StopCycle stops the repeating image cycle
type StopCycle struct{}

func (SaveSettings) isCommand() {}
func (StartCycle) isCommand()   {}
func (StopCycle) isCommand()    {}
