package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/models"
)

type tiebaLoadedMsg struct {
	id    int64
	tieba models.Tieba
	posts models.Page[models.Post]
	err   error
}

type membershipChangedMsg struct {
	id     int64
	joined bool
	err    error
}

// TiebaDetailModel shows a board and its latest posts.
type TiebaDetailModel struct {
	ctx  context.Context
	deps Deps
	id   int64

	tieba   models.Tieba
	posts   cursorList[models.Post]
	loading bool
	busy    bool
	errMsg  string
}

func NewTiebaDetailModel(ctx context.Context, deps Deps, m router.Match) *TiebaDetailModel {
	id, _ := parseID(m.Param("id"))
	return &TiebaDetailModel{ctx: ctx, deps: deps, id: id}
}

func (m *TiebaDetailModel) Init() tea.Cmd {
	if m.id <= 0 {
		m.errMsg = app.MsgNotFound
		return nil
	}
	m.loading = true
	return m.cmdLoad()
}

func (m *TiebaDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tiebaLoadedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.loading = false
		m.errMsg = inlineError(msg.err)
		if msg.err == nil {
			m.tieba = msg.tieba
			m.posts.set(msg.posts.Results)
		}
		return m, nil

	case membershipChangedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errMsg = inlineError(msg.err)
			return m, nil
		}
		m.tieba.IsJoined = msg.joined
		if msg.joined {
			m.tieba.MemberCount++
			return m, notify(app.NoticeSuccess, app.MsgJoinedTieba)
		}
		if m.tieba.MemberCount > 0 {
			m.tieba.MemberCount--
		}
		return m, notify(app.NoticeSuccess, app.MsgLeftTieba)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, goBack
		case m.loading:
			return m, nil
		case key.Matches(msg, keys.up):
			m.posts.up()
		case key.Matches(msg, keys.down):
			m.posts.down()
		case key.Matches(msg, keys.enter):
			if p, ok := m.posts.current(); ok {
				return m, navigateTo(fmt.Sprintf("/post/%d", p.ID))
			}
		case key.Matches(msg, keys.join):
			if m.busy || m.tieba.ID == 0 {
				return m, nil
			}
			m.busy = true
			return m, m.cmdToggleMembership(!m.tieba.IsJoined)
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

func (m *TiebaDetailModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case m.errMsg != "" && m.tieba.ID == 0:
		b.WriteString(errorStyle.Render("错误: " + m.errMsg))
		b.WriteString("\n")
	default:
		t := m.tieba
		b.WriteString(titleStyle.Render(t.Name))
		if t.IsOfficial {
			b.WriteString(" [官方]")
		}
		b.WriteString("\n")
		b.WriteString(valueOrDash(t.Description))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "分类 %s · 成员 %d · 帖子 %d · 今日 %d\n", valueOrDash(t.Category.Name), t.MemberCount, t.PostCount, t.TodayPostCount)
		if t.IsJoined {
			b.WriteString("已加入\n")
		}
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("错误: " + m.errMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")

		if len(m.posts.items) == 0 {
			b.WriteString("暂无帖子\n")
		}
		for i, p := range m.posts.items {
			fmt.Fprintf(&b, "%s %s  %s\n", cursorMark(m.posts.selected(i)), fitText(p.Title, 40),
				helpStyle.Render(fmt.Sprintf("%s · %s", p.Author.DisplayName(), formatTime(p.CreatedAt))))
		}
	}

	join := "J: 加入"
	if m.tieba.IsJoined {
		join = "J: 退出"
	}
	return renderPage("贴吧详情", strings.TrimRight(b.String(), "\n"), "enter: 打开帖子 │ "+join+" │ r: 刷新 │ esc: 返回")
}

func (m *TiebaDetailModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	id := m.id
	boards := m.deps.Boards
	posts := m.deps.Posts
	return func() tea.Msg {
		t, err := boards.GetTiebaDetail(ctx, id)
		if err != nil {
			return tiebaLoadedMsg{id: id, err: err}
		}
		page, err := posts.GetPostList(ctx, models.PostListParams{
			Tieba:      id,
			Sort:       models.PostSortLatest,
			PageParams: models.PageParams{Page: 1, PageSize: listPageSize},
		})
		return tiebaLoadedMsg{id: id, tieba: t, posts: page, err: err}
	}
}

func (m *TiebaDetailModel) cmdToggleMembership(join bool) tea.Cmd {
	ctx := m.ctx
	id := m.id
	boards := m.deps.Boards
	return func() tea.Msg {
		var err error
		if join {
			_, err = boards.JoinTieba(ctx, id)
		} else {
			_, err = boards.LeaveTieba(ctx, id)
		}
		return membershipChangedMsg{id: id, joined: join, err: err}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
