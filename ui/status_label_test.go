package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

// TestStatusLabelStates checks the text and color track the cycle state
func TestStatusLabelStates(t *testing.T) {
	test.NewApp()

	label := NewStatusLabel()
	test.WidgetRenderer(label)

	if label.text != "Cycle stopped" {
		t.Errorf("Expected initial text 'Cycle stopped', got '%s'", label.text)
	}
	if label.bgColor != stoppedBg {
		t.Error("Expected the stopped background color initially")
	}

	label.SetRunning(true)
	if label.text != "Cycle running" {
		t.Errorf("Expected 'Cycle running', got '%s'", label.text)
	}
	if label.bgColor != runningBg {
		t.Error("Expected the running background color")
	}

	label.SetRunning(false)
	if label.text != "Cycle stopped" {
		t.Errorf("Expected 'Cycle stopped' again, got '%s'", label.text)
	}
}
