package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// CreateBottomBar creates the bottom bar with the application version and the close action
func CreateBottomBar(name, version string, closeButton *widget.Button) fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel(fmt.Sprintf("%s %s", name, version)),
		layout.NewSpacer(),
		closeButton,
	)
}
