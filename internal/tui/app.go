package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/internal/session"
)

// rootModel hosts the view of the current route:
// 1) runs router transitions on navigateMsg and backMsg
// 2) keeps the notice stack and the session header
// 3) handles global ctrl+c quit
// 4) delegates all other messages to the current view
type rootModel struct {
	ui      *TUI
	start   string
	initial []tea.Msg

	current tea.Model
	match   router.Match

	notices  noticeStack
	snapshot session.Snapshot
	spinner  spinner.Model

	showBuildInfo bool
	quitByUser    bool
}

func newRootModel(ui *TUI, start string) *rootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	r := &rootModel{
		ui:      ui,
		start:   start,
		spinner: s,
	}
	if ui.deps.Session != nil {
		r.snapshot = ui.deps.Session.Snapshot()
	}
	return r
}

func (r *rootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{replaceWith(r.start)}
	for _, msg := range r.initial {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	r.initial = nil
	return tea.Sequence(cmds...)
}

func (r *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			r.quitByUser = true
			return r, tea.Quit
		case r.showBuildInfo:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(msg, keys.buildInfo) && r.match.Route.Name == router.RouteHome:
			r.showBuildInfo = true
			return r, nil
		}

	case navigateMsg:
		return r.navigate(msg.path, msg.replace)

	case backMsg:
		m, err := r.ui.router.Back()
		if errors.Is(err, router.ErrNoHistory) {
			return r.navigate(router.PathHome, true)
		}
		return r.enter(m, err)

	case noticeMsg:
		id := r.notices.push(msg.level, msg.text)
		return r, tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })

	case noticeExpiredMsg:
		r.notices.remove(msg.id)
		return r, nil

	case sessionMsg:
		wasLoading := r.snapshot.Loading
		r.snapshot = msg.snapshot
		if msg.snapshot.Loading && !wasLoading {
			return r, r.spinner.Tick
		}
		return r, nil

	case spinner.TickMsg:
		if !r.snapshot.Loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r *rootModel) navigate(path string, replace bool) (tea.Model, tea.Cmd) {
	var (
		m   router.Match
		err error
	)
	if replace {
		m, err = r.ui.router.Replace(path)
	} else {
		m, err = r.ui.router.Navigate(path)
	}
	return r.enter(m, err)
}

// enter activates the view of a committed transition.
func (r *rootModel) enter(m router.Match, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		r.ui.logger.Warn().Err(err).Msg("navigation failed")
		return r, notify(app.NoticeWarning, app.MsgNavigationFailed)
	}

	view, err := r.ui.views.View(m)
	if err != nil {
		view = NewUnavailableModel(m)
	}

	r.match = m
	r.current = view
	r.showBuildInfo = false
	return r, tea.Batch(view.Init(), tea.SetWindowTitle(r.ui.Title()))
}

func (r *rootModel) View() string {
	var b strings.Builder

	b.WriteString(r.header())
	b.WriteString("\n\n")

	switch {
	case r.showBuildInfo:
		b.WriteString(renderBuildInfoWindow(r.snapshot.AppConfig.SiteName, r.ui.buildInfo))
	case r.current != nil:
		b.WriteString(r.current.View())
	}

	if n := r.notices.View(); n != "" {
		b.WriteString("\n\n")
		b.WriteString(n)
	}

	return appStyle.Render(b.String())
}

func (r *rootModel) header() string {
	site := r.snapshot.AppConfig.SiteName
	if site == "" {
		site = "tieba"
	}

	user := "未登录"
	if r.snapshot.User != nil {
		user = r.snapshot.User.DisplayName()
	}
	if r.snapshot.Loading {
		user = r.spinner.View() + " " + user
	}

	title := r.ui.Title()
	if title == "" {
		return titleStyle.Render(site) + "  " + helpStyle.Render(user)
	}
	return titleStyle.Render(site+" · "+title) + "  " + helpStyle.Render(user)
}
