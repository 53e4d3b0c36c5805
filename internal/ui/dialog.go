package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-manager/internal/deadline"
	"task-manager/internal/repository"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogError
)

// dialog is a blocking message box. While one is open the window
// ignores every key except Dismiss and Quit.
type dialog struct {
	kind  dialogKind
	title string
	body  string
}

const (
	aboutTitle = "About"
	aboutBody  = "Task Manager with deadline countdown\nBuilt with bubbletea and SQLite."
)

func aboutDialog() *dialog {
	return &dialog{kind: dialogInfo, title: aboutTitle, body: aboutBody}
}

// errorDialog maps an operation failure to the message shown to the user.
func errorDialog(err error) *dialog {
	var validation *deadline.ValidationError
	if errors.As(err, &validation) {
		return &dialog{
			kind:  dialogWarning,
			title: "Invalid format",
			body:  "Enter the deadline in the format YYYY-MM-DD HH:MM:SS",
		}
	}
	var storage *repository.StorageError
	if errors.As(err, &storage) {
		return &dialog{
			kind:  dialogError,
			title: "Storage error",
			body:  "The task list was not changed.\n" + storage.Error(),
		}
	}
	return &dialog{kind: dialogError, title: "Error", body: err.Error()}
}

// reloadFailedDialog reports an add that was stored but could not be
// followed by a fresh list.
func reloadFailedDialog(err error) *dialog {
	return &dialog{
		kind:  dialogWarning,
		title: "Task saved",
		body:  "The task was saved, but the task list could not be reloaded.\n" + err.Error(),
	}
}

// render draws the dialog box as lines ready for spliceOverlay.
func (d *dialog) render(theme Theme) []string {
	accent := theme.Accent
	switch d.kind {
	case dialogWarning:
		accent = theme.Warning
	case dialogError:
		accent = theme.Expired
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Background(theme.DialogBackground)
	bodyStyle := lipgloss.NewStyle().
		Foreground(theme.DialogForeground).
		Background(theme.DialogBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.DialogBackground)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(d.title),
		"",
		bodyStyle.Render(d.body),
		"",
		footerStyle.Render("Enter/Esc close"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(theme.DialogBackground).
		Padding(0, 2).
		Render(inner)

	return strings.Split(box, "\n")
}
