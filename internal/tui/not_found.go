package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/router"
)

// NotFoundModel is shown for paths outside the route table.
type NotFoundModel struct {
	path string
}

func NewNotFoundModel(m router.Match) *NotFoundModel {
	return &NotFoundModel{path: m.FullPath()}
}

func (m *NotFoundModel) Init() tea.Cmd { return nil }

func (m *NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			return m, replaceWith(router.PathHome)
		case key.Matches(keyMsg, keys.esc):
			return m, goBack
		}
	}
	return m, nil
}

func (m *NotFoundModel) View() string {
	return renderPage("页面不存在", app.MsgNotFound+"\n\n"+m.path, "enter: 回到首页 │ esc: 返回")
}

// UnavailableModel stands in for routes the terminal client has no screen
// for.
type UnavailableModel struct {
	title string
}

func NewUnavailableModel(m router.Match) *UnavailableModel {
	return &UnavailableModel{title: m.Route.Meta.Title}
}

func (m *UnavailableModel) Init() tea.Cmd { return nil }

func (m *UnavailableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m, goBack
	}
	return m, nil
}

func (m *UnavailableModel) View() string {
	return renderPage(valueOrDash(m.title), app.MsgPageUnavailable, "esc: 返回")
}
