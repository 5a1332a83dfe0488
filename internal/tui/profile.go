package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/models"
)

type profileLoadedMsg struct {
	id      int64
	profile models.UserProfile
	err     error
}

// ProfileModel shows a user's public profile.
type ProfileModel struct {
	ctx   context.Context
	users Profiles
	id    int64

	profile models.UserProfile
	loading bool
	errMsg  string
}

func NewProfileModel(ctx context.Context, users Profiles, m router.Match) *ProfileModel {
	id, _ := parseID(m.Param("id"))
	return &ProfileModel{ctx: ctx, users: users, id: id}
}

func (m *ProfileModel) Init() tea.Cmd {
	if m.id <= 0 {
		m.errMsg = app.MsgNotFound
		return nil
	}
	m.loading = true
	ctx, id, users := m.ctx, m.id, m.users
	return func() tea.Msg {
		p, err := users.GetUserDetail(ctx, id)
		return profileLoadedMsg{id: id, profile: p, err: err}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.loading = false
		m.errMsg = inlineError(msg.err)
		if msg.err == nil {
			m.profile = msg.profile
		}
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, goBack
		}
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case m.profile.ID == 0:
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("错误: " + m.errMsg))
			b.WriteString("\n")
		}
	default:
		p := m.profile
		b.WriteString(titleStyle.Render(p.DisplayName()))
		fmt.Fprintf(&b, "  @%s · Lv.%d\n", p.Username, p.Level)
		b.WriteString(valueOrDash(p.Bio))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "粉丝 %d · 关注 %d · 帖子 %d · 评论 %d\n", p.FollowersCount, p.FollowingCount, p.PostsCount, p.CommentsCount)
		fmt.Fprintf(&b, "所在地 %s · 加入于 %s\n", valueOrDash(p.Location), formatTime(p.DateJoined))
	}

	return renderPage("用户主页", strings.TrimRight(b.String(), "\n"), "esc: 返回")
}
