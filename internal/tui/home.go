package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/models"
)

type hotPostsLoadedMsg struct {
	posts []models.Post
	err   error
}

type logoutDoneMsg struct{}

// HomeModel is the landing screen: hot posts plus shortcuts to the other
// screens.
type HomeModel struct {
	ctx  context.Context
	deps Deps

	posts   cursorList[models.Post]
	loading bool
	errMsg  string
}

func NewHomeModel(ctx context.Context, deps Deps) *HomeModel {
	return &HomeModel{ctx: ctx, deps: deps}
}

// Init reloads the hot posts on every visit.
func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hotPostsLoadedMsg:
		m.loading = false
		m.errMsg = inlineError(msg.err)
		if msg.err == nil {
			m.posts.set(msg.posts)
		}
		return m, nil

	case logoutDoneMsg:
		return m, tea.Batch(notify(app.NoticeSuccess, app.MsgLogoutSucceeded), m.cmdLoad())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.posts.up()
		case key.Matches(msg, keys.down):
			m.posts.down()
		case key.Matches(msg, keys.enter):
			if p, ok := m.posts.current(); ok {
				return m, navigateTo(fmt.Sprintf("/post/%d", p.ID))
			}
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.boards):
			return m, navigateTo("/tieba")
		case key.Matches(msg, keys.search):
			return m, navigateTo("/search")
		case key.Matches(msg, keys.login):
			if !m.loggedIn() {
				return m, navigateTo("/login")
			}
		case key.Matches(msg, keys.logout):
			if m.loggedIn() {
				return m, m.cmdLogout()
			}
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	b.WriteString("热门帖子\n\n")

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("错误: " + m.errMsg))
		b.WriteString("\n")
	case len(m.posts.items) == 0:
		b.WriteString("暂无帖子\n")
	default:
		for i, p := range m.posts.items {
			fmt.Fprintf(&b, "%s %s  %s\n", cursorMark(m.posts.selected(i)), fitText(p.Title, 40),
				helpStyle.Render(fmt.Sprintf("%s · 赞 %d · 评论 %d", p.Tieba.Name, p.LikeCount, p.CommentCount)))
		}
	}

	hot := "enter: 打开 │ b: 贴吧 │ /: 搜索 │ r: 刷新 │ v: 关于 │ q: 退出"
	if m.loggedIn() {
		hot = "o: 退出登录 │ " + hot
	} else {
		hot = "l: 登录 │ " + hot
	}
	return renderPage("首页", strings.TrimRight(b.String(), "\n"), hot)
}

func (m *HomeModel) loggedIn() bool {
	return m.deps.Session != nil && m.deps.Session.Snapshot().IsLoggedIn
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	posts := m.deps.Posts
	return func() tea.Msg {
		items, err := posts.GetHotPosts(ctx)
		return hotPostsLoadedMsg{posts: items, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sess := m.deps.Session
	return func() tea.Msg {
		sess.Logout(ctx)
		return logoutDoneMsg{}
	}
}
