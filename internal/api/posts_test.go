package api

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tieba/models"
)

func TestPostsAPI_GetPostList(t *testing.T) {
	client, backend := newTestRequester(t)
	backend.respond(http.StatusOK, `{"count":2,"results":[{"id":1},{"id":2}]}`)

	page, err := NewPostsAPI(client).GetPostList(context.Background(), models.PostListParams{
		Tieba:      3,
		Sort:       models.PostSortHot,
		PageParams: models.PageParams{Page: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)

	req := backend.last(t)
	assert.Equal(t, "/api/posts/posts/", req.Path)
	assert.Equal(t, "3", req.Query.Get("tieba"))
	assert.Equal(t, "hot", req.Query.Get("sort"))
	assert.Equal(t, "2", req.Query.Get("page"))
	assert.False(t, req.Query.Has("author"))
}

func TestPostsAPI_CreatePost_ExpandsFileArrays(t *testing.T) {
	client, backend := newTestRequester(t)
	backend.respond(http.StatusCreated, `{"message":"帖子创建成功","post":{"id":100,"title":"hello"}}`)
	anonymous := true

	resp, err := NewPostsAPI(client).CreatePost(context.Background(), models.PostCreate{
		Title:       "hello",
		Content:     "world",
		Tieba:       3,
		IsAnonymous: &anonymous,
		Images: []models.File{
			{Name: "1.png", Content: bytes.NewReader(pngBytes())},
			{Name: "2.gif", Content: bytes.NewReader(gifBytes())},
		},
		Attachments: []models.File{
			{Name: "notes.txt", Content: strings.NewReader("plain notes")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Post.ID)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/posts/posts/create/", req.Path)
	assert.Equal(t, []string{"hello"}, req.Fields["title"])
	assert.Equal(t, []string{"3"}, req.Fields["tieba"])
	assert.Equal(t, []string{"true"}, req.Fields["is_anonymous"])

	require.Len(t, req.Files["images"], 2)
	assert.Equal(t, "1.png", req.Files["images"][0].Name)
	assert.Equal(t, "image/png", req.Files["images"][0].ContentType)
	assert.Equal(t, "2.gif", req.Files["images"][1].Name)
	assert.Equal(t, "image/gif", req.Files["images"][1].ContentType)

	require.Len(t, req.Files["attachments"], 1)
	assert.Equal(t, "text/plain", req.Files["attachments"][0].ContentType)
	assert.Equal(t, "plain notes", req.Files["attachments"][0].Content)
}

func TestPostsAPI_CreatePost_WithoutFiles(t *testing.T) {
	client, backend := newTestRequester(t)

	_, err := NewPostsAPI(client).CreatePost(context.Background(), models.PostCreate{Title: "t", Content: "c", Tieba: 1})
	require.NoError(t, err)

	req := backend.last(t)
	assert.True(t, strings.HasPrefix(req.ContentType, "multipart/form-data"))
	assert.Equal(t, []string{"t"}, req.Fields["title"])
	assert.NotContains(t, req.Fields, "is_anonymous")
	assert.Empty(t, req.Files)
}

func TestPostsAPI_CreatePost_NilContent(t *testing.T) {
	client, backend := newTestRequester(t)

	_, err := NewPostsAPI(client).CreatePost(context.Background(), models.PostCreate{
		Title:  "t",
		Images: []models.File{{Name: "broken.png"}},
	})

	assert.ErrorIs(t, err, ErrNilFileContent)
	assert.Equal(t, 0, backend.count())
}

func TestPostsAPI_Mutations(t *testing.T) {
	client, backend := newTestRequester(t)
	posts := NewPostsAPI(client)
	ctx := context.Background()
	title := "new title"

	backend.respond(http.StatusOK, `{"message":"帖子更新成功","post":{"id":9,"title":"new title"}}`)
	updated, err := posts.UpdatePost(ctx, 9, models.PostUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Post.Title)
	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/posts/posts/9/update/", req.Path)
	assert.Equal(t, map[string]any{"title": "new title"}, req.JSON)

	backend.respond(http.StatusOK, `{"message":"帖子删除成功"}`)
	deleted, err := posts.DeletePost(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "帖子删除成功", deleted.Message)
	assert.Equal(t, http.MethodDelete, backend.last(t).Method)
	assert.Equal(t, "/api/posts/posts/9/delete/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"message":"点赞成功","like_count":4,"is_liked":true}`)
	liked, err := posts.LikePost(ctx, 9)
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, 4, liked.LikeCount)
	assert.Equal(t, "/api/posts/posts/9/like/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"message":"收藏成功","collect_count":2,"is_collected":true}`)
	collected, err := posts.CollectPost(ctx, 9)
	require.NoError(t, err)
	assert.True(t, collected.IsCollected)
	assert.Equal(t, "/api/posts/posts/9/collect/", backend.last(t).Path)

	backend.respond(http.StatusCreated, `{"message":"举报成功，我们会尽快处理","report":{"id":1,"reason":"spam","status":"pending"}}`)
	reported, err := posts.ReportPost(ctx, 9, models.ReportData{Reason: "spam"})
	require.NoError(t, err)
	require.NotNil(t, reported.Report)
	assert.Equal(t, models.ReportPending, reported.Report.Status)
	req = backend.last(t)
	assert.Equal(t, "/api/posts/posts/9/report/", req.Path)
	assert.Equal(t, map[string]any{"reason": "spam"}, req.JSON)
}

func TestPostsAPI_Feeds(t *testing.T) {
	client, backend := newTestRequester(t)
	posts := NewPostsAPI(client)
	ctx := context.Background()

	backend.respond(http.StatusOK, `{"hot_posts":[{"id":1}]}`)
	hot, err := posts.GetHotPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, hot, 1)
	assert.Equal(t, "/api/posts/hot/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"recommended_posts":[{"id":1},{"id":2}]}`)
	rec, err := posts.GetRecommendedPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, rec, 2)
	assert.Equal(t, "/api/posts/recommended/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"count":0,"results":[]}`)
	_, err = posts.GetUserPostHistory(ctx, models.PageParams{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "/api/posts/user/history/", backend.last(t).Path)
	assert.Equal(t, "5", backend.last(t).Query.Get("page_size"))
}

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 24)...)
}

func gifBytes() []byte {
	return append([]byte("GIF89a"), bytes.Repeat([]byte{1}, 16)...)
}
