package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/models"
)

const listPageSize = 20

type tiebaPageLoadedMsg struct {
	page  int
	items models.Page[models.Tieba]
	err   error
}

// TiebaListModel pages through every board.
type TiebaListModel struct {
	ctx    context.Context
	boards Boards

	list    cursorList[models.Tieba]
	page    int
	count   int
	hasNext bool
	loading bool
	errMsg  string
}

func NewTiebaListModel(ctx context.Context, boards Boards) *TiebaListModel {
	return &TiebaListModel{ctx: ctx, boards: boards, page: 1}
}

// Init keeps the current page and selection; the list is only fetched on
// the first visit.
func (m *TiebaListModel) Init() tea.Cmd {
	if len(m.list.items) > 0 || m.loading {
		return nil
	}
	m.loading = true
	return m.cmdLoad(m.page)
}

func (m *TiebaListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tiebaPageLoadedMsg:
		m.loading = false
		m.errMsg = inlineError(msg.err)
		if msg.err != nil {
			return m, nil
		}
		m.page = msg.page
		m.count = msg.items.Count
		m.hasNext = msg.items.HasNext()
		m.list.idx = 0
		m.list.set(msg.items.Results)
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.up):
			m.list.up()
		case key.Matches(msg, keys.down):
			m.list.down()
		case key.Matches(msg, keys.enter):
			if t, ok := m.list.current(); ok {
				return m, navigateTo(fmt.Sprintf("/tieba/%d", t.ID))
			}
		case key.Matches(msg, keys.nextPage):
			if m.hasNext {
				m.loading = true
				return m, m.cmdLoad(m.page + 1)
			}
		case key.Matches(msg, keys.prevPage):
			if m.page > 1 {
				m.loading = true
				return m, m.cmdLoad(m.page - 1)
			}
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad(m.page)
		case key.Matches(msg, keys.esc):
			return m, goBack
		}
	}
	return m, nil
}

func (m *TiebaListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("错误: " + m.errMsg))
		b.WriteString("\n")
	case len(m.list.items) == 0:
		b.WriteString("暂无贴吧\n")
	default:
		for i, t := range m.list.items {
			fmt.Fprintf(&b, "%s %s  %s\n", cursorMark(m.list.selected(i)), fitText(t.Name, 30),
				helpStyle.Render(fmt.Sprintf("%s · 成员 %d · 帖子 %d", valueOrDash(t.Category.Name), t.MemberCount, t.PostCount)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(pageInfo(m.page, m.count, listPageSize)))
		b.WriteString("\n")
	}

	return renderPage("贴吧列表", strings.TrimRight(b.String(), "\n"), "enter: 进入 │ n/p: 翻页 │ r: 刷新 │ esc: 返回")
}

func (m *TiebaListModel) cmdLoad(page int) tea.Cmd {
	ctx := m.ctx
	boards := m.boards
	return func() tea.Msg {
		items, err := boards.GetTiebaList(ctx, models.TiebaListParams{
			PageParams: models.PageParams{Page: page, PageSize: listPageSize},
		})
		return tiebaPageLoadedMsg{page: page, items: items, err: err}
	}
}
