package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TopBar shows the backend status. The icon and the label emphasis follow
// the bound status string.
type TopBar struct {
	status binding.String
	icon   *widget.Icon
	label  *widget.Label
	root   fyne.CanvasObject
}

// NewTopBar builds a top bar tracking status.
func NewTopBar(status binding.String) *TopBar {
	b := &TopBar{
		status: status,
		icon:   widget.NewIcon(theme.ViewRefreshIcon()),
		label:  widget.NewLabelWithData(status),
	}
	b.root = container.NewHBox(
		widget.NewLabel("Backend:"),
		b.icon,
		b.label,
	)
	status.AddListener(binding.NewDataListener(b.refresh))
	return b
}

// Object returns the bar's canvas object.
func (b *TopBar) Object() fyne.CanvasObject {
	return b.root
}

func (b *TopBar) refresh() {
	current, err := b.status.Get()
	if err != nil {
		return
	}

	switch current {
	case StatusReady:
		b.icon.SetResource(theme.ConfirmIcon())
		b.label.Importance = widget.SuccessImportance
	case StatusUnavailable:
		b.icon.SetResource(theme.ErrorIcon())
		b.label.Importance = widget.DangerImportance
	default:
		b.icon.SetResource(theme.ViewRefreshIcon())
		b.label.Importance = widget.MediumImportance
	}
	b.label.Refresh()
}
