package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/models"
)

type registerResultMsg struct {
	err error
}

const (
	regUsername = iota
	regEmail
	regNickname
	regPassword
	regRepeat
)

// RegisterModel is the registration screen. Registration does not sign the
// user in; on success the login screen is opened.
type RegisterModel struct {
	ctx     context.Context
	session Session

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The username field receives
// focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, sess Session) *RegisterModel {
	fields := make([]textinput.Model, 5)

	fields[regUsername] = textinput.New()
	fields[regUsername].Placeholder = "用户名"
	fields[regUsername].CharLimit = 150
	fields[regUsername].Width = 40
	fields[regUsername].Focus()

	fields[regEmail] = textinput.New()
	fields[regEmail].Placeholder = "邮箱"
	fields[regEmail].CharLimit = 254
	fields[regEmail].Width = 40

	fields[regNickname] = textinput.New()
	fields[regNickname].Placeholder = "昵称（可选）"
	fields[regNickname].CharLimit = 50
	fields[regNickname].Width = 40

	fields[regPassword] = textinput.New()
	fields[regPassword].Placeholder = "密码"
	fields[regPassword].EchoMode = textinput.EchoPassword
	fields[regPassword].EchoCharacter = '*'
	fields[regPassword].Width = 40

	fields[regRepeat] = textinput.New()
	fields[regRepeat].Placeholder = "确认密码"
	fields[regRepeat].EchoMode = textinput.EchoPassword
	fields[regRepeat].EchoCharacter = '*'
	fields[regRepeat].Width = 40

	return &RegisterModel{
		ctx:     ctx,
		session: sess,
		inputs:  fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = inlineError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, tea.Sequence(notify(app.NoticeSuccess, app.MsgRegisterSucceeded), replaceWith("/login"))
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, goBack
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

			data := models.RegisterData{
				Username: strings.TrimSpace(m.inputs[regUsername].Value()),
				Email:    strings.TrimSpace(m.inputs[regEmail].Value()),
				Nickname: strings.TrimSpace(m.inputs[regNickname].Value()),
				Password: m.inputs[regPassword].Value(),
			}
			if data.Username == "" || data.Email == "" || data.Password == "" {
				m.errMsg = app.MsgRequiredFields
				return m, nil
			}
			if data.Password != m.inputs[regRepeat].Value() {
				m.errMsg = app.MsgPasswordsMismatch
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(data)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"用户名  ", "邮箱    ", "昵称    ", "密码    ", "确认密码"}

	var b strings.Builder
	b.WriteString("字段      │ 值\n")
	b.WriteString("──────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("  │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[注册中...]\n")
	} else {
		b.WriteString("\n[注册]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("错误: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("注册", strings.TrimRight(b.String(), "\n"), "esc: 返回 │ tab: 下一项 │ enter: 注册")
}

func (m *RegisterModel) cmdRegister(data models.RegisterData) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		_, err := sess.Register(ctx, data)
		return registerResultMsg{err: err}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
