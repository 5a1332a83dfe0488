package tui

import (
	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// navigateMsg asks the root model to run a router transition.
type navigateMsg struct {
	path    string
	replace bool
}

type backMsg struct{}

type noticeMsg struct {
	level app.NoticeLevel
	text  string
}

type noticeExpiredMsg struct {
	id int
}

type sessionMsg struct {
	snapshot session.Snapshot
}

func navigateTo(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

func replaceWith(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path, replace: true} }
}

func goBack() tea.Msg { return backMsg{} }

func notify(level app.NoticeLevel, text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{level: level, text: text} }
}
