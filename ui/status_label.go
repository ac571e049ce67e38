package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	runningBg  = color.RGBA{R: 34, G: 102, B: 52, A: 255}
	stoppedBg  = color.RGBA{R: 70, G: 70, B: 74, A: 255}
	statusText = color.White
)

// StatusLabel is a custom widget showing the cycle state on a colored
// background: green while a cycle is running, gray while stopped.
type StatusLabel struct {
	widget.BaseWidget
	text    string
	bgColor color.Color
	textObj *canvas.Text
	bgRect  *canvas.Rectangle
}

// NewStatusLabel creates a status label in the stopped state
func NewStatusLabel() *StatusLabel {
	sl := &StatusLabel{
		text:    "Cycle stopped",
		bgColor: stoppedBg,
	}
	sl.ExtendBaseWidget(sl)
	return sl
}

// SetRunning switches the label between the running and stopped states
func (sl *StatusLabel) SetRunning(running bool) {
	if running {
		sl.text = "Cycle running"
		sl.bgColor = runningBg
	} else {
		sl.text = "Cycle stopped"
		sl.bgColor = stoppedBg
	}
	sl.Refresh()
}

// CreateRenderer implements fyne.Widget
func (sl *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	sl.textObj = canvas.NewText(sl.text, statusText)
	sl.textObj.Alignment = fyne.TextAlignCenter
	sl.bgRect = canvas.NewRectangle(sl.bgColor)

	return &statusLabelRenderer{
		label:     sl,
		container: container.NewStack(sl.bgRect, sl.textObj),
	}
}

// statusLabelRenderer implements fyne.WidgetRenderer
type statusLabelRenderer struct {
	label     *StatusLabel
	container *fyne.Container
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *statusLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *statusLabelRenderer) Refresh() {
	r.label.textObj.Text = r.label.text
	r.label.bgRect.FillColor = r.label.bgColor
	r.label.textObj.Refresh()
	r.label.bgRect.Refresh()
}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *statusLabelRenderer) Destroy() {
	// Nothing to destroy
}
