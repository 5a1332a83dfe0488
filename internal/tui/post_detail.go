package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/models"
)

type postLoadedMsg struct {
	id   int64
	post models.Post
	err  error
}

type commentsLoadedMsg struct {
	id    int64
	page  int
	items models.Page[models.Comment]
	err   error
}

type likedMsg struct {
	id   int64
	resp models.LikeResponse
	err  error
}

type copiedMsg struct {
	err error
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// PostDetailModel shows a post with a page of its comments.
type PostDetailModel struct {
	ctx  context.Context
	deps Deps
	id   int64

	post        models.Post
	comments    []models.Comment
	commentPage int
	commentCnt  int
	hasNext     bool

	loading bool
	liking  bool
	errMsg  string
}

func NewPostDetailModel(ctx context.Context, deps Deps, m router.Match) *PostDetailModel {
	id, _ := parseID(m.Param("id"))
	return &PostDetailModel{ctx: ctx, deps: deps, id: id, commentPage: 1}
}

// Init fetches the post on the first visit only; the view is kept alive
// while the same post is reopened.
func (m *PostDetailModel) Init() tea.Cmd {
	if m.id <= 0 {
		m.errMsg = app.MsgNotFound
		return nil
	}
	if m.post.ID == m.id || m.loading {
		return nil
	}
	m.loading = true
	return tea.Batch(m.cmdLoadPost(), m.cmdLoadComments(1))
}

func (m *PostDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postLoadedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.loading = false
		m.errMsg = inlineError(msg.err)
		if msg.err == nil {
			m.post = msg.post
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.id != m.id || msg.err != nil {
			return m, nil
		}
		m.commentPage = msg.page
		m.comments = msg.items.Results
		m.commentCnt = msg.items.Count
		m.hasNext = msg.items.HasNext()
		return m, nil

	case likedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.liking = false
		if msg.err != nil {
			return m, nil
		}
		m.post.IsLiked = msg.resp.IsLiked
		m.post.LikeCount = msg.resp.LikeCount
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, notify(app.NoticeError, app.MsgCopyFailed)
		}
		return m, notify(app.NoticeSuccess, app.MsgLinkCopied)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, goBack
		case m.loading || m.post.ID == 0:
			return m, nil
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.link())
		case key.Matches(msg, keys.like):
			if m.liking {
				return m, nil
			}
			m.liking = true
			return m, m.cmdLike()
		case key.Matches(msg, keys.nextPage):
			if m.hasNext {
				return m, m.cmdLoadComments(m.commentPage + 1)
			}
		case key.Matches(msg, keys.prevPage):
			if m.commentPage > 1 {
				return m, m.cmdLoadComments(m.commentPage - 1)
			}
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, tea.Batch(m.cmdLoadPost(), m.cmdLoadComments(m.commentPage))
		}
	}
	return m, nil
}

func (m *PostDetailModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case m.post.ID == 0:
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("错误: " + m.errMsg))
			b.WriteString("\n")
		}
	default:
		p := m.post
		b.WriteString(titleStyle.Render(p.Title))
		b.WriteString("\n")
		author := p.Author.DisplayName()
		if p.IsAnonymous {
			author = "匿名用户"
		}
		b.WriteString(helpStyle.Render(fmt.Sprintf("%s · %s · %s", valueOrDash(p.Tieba.Name), author, formatTime(p.CreatedAt))))
		b.WriteString("\n\n")
		b.WriteString(p.Content)
		b.WriteString("\n\n")

		liked := "赞"
		if p.IsLiked {
			liked = "已赞"
		}
		fmt.Fprintf(&b, "%s %d · 浏览 %d · 收藏 %d\n\n", liked, p.LikeCount, p.ViewCount, p.CollectCount)

		fmt.Fprintf(&b, "评论（%d）\n", m.commentCnt)
		if len(m.comments) == 0 {
			b.WriteString("暂无评论\n")
		}
		for _, c := range m.comments {
			name := c.Author.DisplayName()
			if c.IsAnonymous {
				name = "匿名用户"
			}
			fmt.Fprintf(&b, "- %s: %s\n", name, fitText(c.Content, 60))
		}
		if m.commentCnt > 0 {
			b.WriteString(helpStyle.Render(pageInfo(m.commentPage, m.commentCnt, listPageSize)))
			b.WriteString("\n")
		}
	}

	return renderPage("帖子详情", strings.TrimRight(b.String(), "\n"), "L: 点赞 │ c: 复制链接 │ n/p: 评论翻页 │ r: 刷新 │ esc: 返回")
}

func (m *PostDetailModel) link() string {
	return strings.TrimRight(m.deps.SiteURL, "/") + fmt.Sprintf("/post/%d", m.id)
}

func (m *PostDetailModel) cmdLoadPost() tea.Cmd {
	ctx := m.ctx
	id := m.id
	posts := m.deps.Posts
	return func() tea.Msg {
		p, err := posts.GetPostDetail(ctx, id)
		return postLoadedMsg{id: id, post: p, err: err}
	}
}

func (m *PostDetailModel) cmdLoadComments(page int) tea.Cmd {
	ctx := m.ctx
	id := m.id
	comments := m.deps.Comments
	return func() tea.Msg {
		items, err := comments.GetCommentList(ctx, id, models.PageParams{Page: page, PageSize: listPageSize})
		return commentsLoadedMsg{id: id, page: page, items: items, err: err}
	}
}

func (m *PostDetailModel) cmdLike() tea.Cmd {
	ctx := m.ctx
	id := m.id
	posts := m.deps.Posts
	return func() tea.Msg {
		resp, err := posts.LikePost(ctx, id)
		return likedMsg{id: id, resp: resp, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}
