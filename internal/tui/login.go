// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/models"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	user models.User
	err  error
}

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (username and password) and signs in through the session
// store. On success the user is sent to the path carried by the redirect
// query parameter, or home.
type LoginModel struct {
	ctx     context.Context
	session Session
	next    string

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] for the matched login route. The
// username field receives focus immediately; the password field uses
// masked echo.
func NewLoginModel(ctx context.Context, sess Session, m router.Match) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "用户名"
	usernameInput.CharLimit = 150
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "密码"
	passwordInput.CharLimit = 128
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: sess,
		next:    redirectTarget(m),
		inputs:  []textinput.Model{usernameInput, passwordInput},
	}
}

// redirectTarget accepts only in-app paths.
func redirectTarget(m router.Match) string {
	next := m.Query.Get(router.RedirectParam)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return router.PathHome
	}
	return next
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg: clears submitting state; redirects on success.
//   - esc: back to the previous screen.
//   - tab / shift+tab: moves focus between inputs.
//   - ctrl+n: opens the registration screen.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = inlineError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, tea.Sequence(notify(app.NoticeSuccess, app.MsgLoginSucceeded), replaceWith(m.next))
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, goBack
		case key.Matches(keyMsg, keys.register):
			return m, replaceWith("/register")
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if username == "" || pass == "" {
				m.errMsg = app.MsgRequiredFields
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginCredentials{Username: username, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("字段    │ 值\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("用户名  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("密码    │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[登录中...]\n")
	} else {
		b.WriteString("\n[登录]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("错误: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("登录", strings.TrimRight(b.String(), "\n"), "esc: 返回 │ tab: 下一项 │ enter: 登录 │ ctrl+n: 注册")
}

func (m *LoginModel) cmdLogin(creds models.LoginCredentials) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		user, err := sess.Login(ctx, creds)
		return loginResultMsg{user: user, err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
