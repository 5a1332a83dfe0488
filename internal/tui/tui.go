// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal host of the client. It plays the part of the
// browser shell: it renders the view of the current route, shows transient
// notices, performs redirects requested by the error-effect layer and
// mirrors route titles into the terminal window title.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/internal/session"
	"github.com/MKhiriev/go-tieba/models"
)

// TUI owns the Bubble Tea program. Notify, Redirect and SetTitle are safe to
// call from any goroutine; calls made before Run are delivered once the
// program starts.
type TUI struct {
	deps      Deps
	router    *router.Router
	views     *router.Views[tea.Model]
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	ctx     context.Context
	program *tea.Program
	pending []tea.Msg
	title   string
}

// New builds the host over r. Route guards are registered by the caller;
// pass the returned TUI to [router.TitleGuard] to mirror titles.
func New(deps Deps, r *router.Router, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	t := &TUI{
		deps:      deps,
		router:    r,
		buildInfo: buildInfo,
		logger:    log,
		ctx:       context.Background(),
	}
	t.views = t.registerViews(router.NewViews[tea.Model]())
	return t
}

func (t *TUI) registerViews(v *router.Views[tea.Model]) *router.Views[tea.Model] {
	return v.
		Register(router.RouteHome, func(router.Match) tea.Model { return NewHomeModel(t.context(), t.deps) }).
		Register(router.RouteLogin, func(m router.Match) tea.Model { return NewLoginModel(t.context(), t.deps.Session, m) }).
		Register(router.RouteRegister, func(router.Match) tea.Model { return NewRegisterModel(t.context(), t.deps.Session) }).
		Register(router.RouteTiebaList, func(router.Match) tea.Model { return NewTiebaListModel(t.context(), t.deps.Boards) }).
		Register(router.RouteTiebaDetail, func(m router.Match) tea.Model { return NewTiebaDetailModel(t.context(), t.deps, m) }).
		Register(router.RoutePostDetail, func(m router.Match) tea.Model { return NewPostDetailModel(t.context(), t.deps, m) }).
		Register(router.RouteUserProfile, func(m router.Match) tea.Model { return NewProfileModel(t.context(), t.deps.Users, m) }).
		Register(router.RouteSearch, func(m router.Match) tea.Model { return NewSearchModel(t.context(), t.deps.Search, m) }).
		Register(router.RouteNotFound, func(m router.Match) tea.Model { return NewNotFoundModel(m) })
}

// Run starts the program on the route at start and blocks until the user
// quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, start string) error {
	root := newRootModel(t, start)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.ctx = ctx
	t.program = p
	root.initial = t.pending
	t.pending = nil
	t.mu.Unlock()

	if t.deps.Session != nil {
		unsubscribe := t.deps.Session.Subscribe(func(s session.Snapshot) {
			t.send(sessionMsg{snapshot: s})
		})
		defer unsubscribe()
	}

	final, err := p.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if r, ok := final.(*rootModel); ok && r.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// Notify shows a transient notice.
func (t *TUI) Notify(level app.NoticeLevel, message string) {
	t.send(noticeMsg{level: level, text: message})
}

// Redirect replaces the current route with path.
func (t *TUI) Redirect(path string) {
	t.send(navigateMsg{path: path, replace: true})
}

// SetTitle records the title of the route being entered. The root model
// forwards it to the terminal after the transition.
func (t *TUI) SetTitle(title string) {
	t.mu.Lock()
	t.title = title
	t.mu.Unlock()
}

// Title returns the last title set.
func (t *TUI) Title() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title
}

func (t *TUI) context() context.Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctx
}

// send never runs on the program's event loop: every caller is a command,
// a background job or code running before the program starts.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	if p == nil {
		t.pending = append(t.pending, msg)
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	p.Send(msg)
}
