package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/models"
)

type searchDoneMsg struct {
	keyword string
	result  models.SearchAllResult
	err     error
}

// searchHit is one selectable row of the combined result list.
type searchHit struct {
	kind  string
	label string
	path  string
}

// SearchModel runs the combined search over boards, posts and users. Focus
// toggles between the keyword input and the result list with tab.
type SearchModel struct {
	ctx    context.Context
	search Searcher

	input     textinput.Model
	hits      cursorList[searchHit]
	inResults bool
	keyword   string
	searching bool
	errMsg    string
}

// NewSearchModel creates the search screen. A q query parameter pre-fills
// the keyword and runs the search on the first visit.
func NewSearchModel(ctx context.Context, search Searcher, m router.Match) *SearchModel {
	input := textinput.New()
	input.Placeholder = "搜索帖子、贴吧、用户"
	input.CharLimit = 100
	input.Width = 40
	input.SetValue(m.Query.Get("q"))
	input.Focus()

	return &SearchModel{ctx: ctx, search: search, input: input}
}

func (m *SearchModel) Init() tea.Cmd {
	if kw := strings.TrimSpace(m.input.Value()); kw != "" && m.keyword == "" {
		m.searching = true
		return tea.Batch(textinput.Blink, m.cmdSearch(kw))
	}
	return textinput.Blink
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.searching = false
		m.errMsg = inlineError(msg.err)
		if msg.err != nil {
			return m, nil
		}
		m.keyword = msg.keyword
		m.hits.idx = 0
		m.hits.set(flattenSearch(msg.result))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, goBack
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.toggleFocus()
			return m, nil
		}

		if m.inResults {
			switch {
			case key.Matches(msg, keys.up):
				m.hits.up()
			case key.Matches(msg, keys.down):
				m.hits.down()
			case key.Matches(msg, keys.enter):
				if h, ok := m.hits.current(); ok {
					return m, navigateTo(h.path)
				}
			}
			return m, nil
		}

		if key.Matches(msg, keys.enter) {
			if m.searching {
				return m, nil
			}
			m.errMsg = ""
			m.searching = true
			return m, m.cmdSearch(strings.TrimSpace(m.input.Value()))
		}
	}

	if m.inResults {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) View() string {
	var b strings.Builder
	b.WriteString("关键词 │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	switch {
	case m.searching:
		b.WriteString("搜索中...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("错误: " + m.errMsg))
		b.WriteString("\n")
	case m.keyword == "":
	case len(m.hits.items) == 0:
		fmt.Fprintf(&b, "没有找到与“%s”相关的结果\n", m.keyword)
	default:
		for i, h := range m.hits.items {
			mark := " "
			if m.inResults {
				mark = cursorMark(m.hits.selected(i))
			}
			fmt.Fprintf(&b, "%s [%s] %s\n", mark, h.kind, fitText(h.label, 50))
		}
	}

	return renderPage("搜索", strings.TrimRight(b.String(), "\n"), "enter: 搜索/打开 │ tab: 切换输入与结果 │ esc: 返回")
}

func (m *SearchModel) toggleFocus() {
	m.inResults = !m.inResults && len(m.hits.items) > 0
	if m.inResults {
		m.input.Blur()
	} else {
		m.input.Focus()
	}
}

func (m *SearchModel) cmdSearch(keyword string) tea.Cmd {
	ctx := m.ctx
	search := m.search
	return func() tea.Msg {
		res, err := search.SearchAll(ctx, models.SearchParams{Keyword: keyword, Size: listPageSize})
		return searchDoneMsg{keyword: keyword, result: res, err: err}
	}
}

func flattenSearch(res models.SearchAllResult) []searchHit {
	hits := make([]searchHit, 0, len(res.Tiebas)+len(res.Posts)+len(res.Users))
	for _, t := range res.Tiebas {
		hits = append(hits, searchHit{kind: "贴吧", label: t.Name, path: fmt.Sprintf("/tieba/%d", t.ID)})
	}
	for _, p := range res.Posts {
		hits = append(hits, searchHit{kind: "帖子", label: p.Title, path: fmt.Sprintf("/post/%d", p.ID)})
	}
	for _, u := range res.Users {
		hits = append(hits, searchHit{kind: "用户", label: u.DisplayName(), path: fmt.Sprintf("/user/%d", u.ID)})
	}
	return hits
}
