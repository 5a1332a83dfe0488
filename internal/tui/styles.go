package tui

import (
	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	noticeBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var noticeColors = map[app.NoticeLevel]lipgloss.Color{
	app.NoticeInfo:    lipgloss.Color("12"),
	app.NoticeSuccess: lipgloss.Color("10"),
	app.NoticeWarning: lipgloss.Color("11"),
	app.NoticeError:   lipgloss.Color("9"),
}

func noticeStyle(level app.NoticeLevel) lipgloss.Style {
	c, ok := noticeColors[level]
	if !ok {
		c = noticeColors[app.NoticeInfo]
	}
	return noticeBoxStyle.BorderForeground(c).Foreground(c)
}
