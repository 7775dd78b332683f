package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriLingo/internal/models"
)

const (
	accent  = lipgloss.Color("62")
	muted   = lipgloss.Color("241")
	subtle  = lipgloss.Color("238")
	success = lipgloss.Color("42")
	failure = lipgloss.Color("203")
	warning = lipgloss.Color("214")
	loading = lipgloss.Color("39")
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1)
}

// PaneStyle frames the input, output and history panes.
func PaneStyle(width int, focused bool) lipgloss.Style {
	border := subtle
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Bold(true)
}

func SelectorStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if focused {
		return s.Foreground(lipgloss.Color("230")).Background(accent).Bold(true)
	}
	return s.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
}

func OutputStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(warning)
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted)
}

func HistoryRowStyle(selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		PaddingLeft(1)
	if selected {
		return s.BorderForeground(accent).Foreground(lipgloss.Color("252"))
	}
	return s.BorderForeground(subtle).Foreground(muted)
}

// StatusStyle colours the status bar by kind.
func StatusStyle(width int, kind models.StatusKind) lipgloss.Style {
	fg := muted
	switch kind {
	case models.StatusLoading:
		fg = loading
	case models.StatusSuccess:
		fg = success
	case models.StatusError:
		fg = failure
	case models.StatusWarning:
		fg = warning
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(subtle).
		Padding(0, 1)
}
