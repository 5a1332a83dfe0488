package api

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tieba/models"
)

func TestCommentsAPI_CreateComment(t *testing.T) {
	tests := []struct {
		name       string
		data       models.CommentCreate
		wantParent []string
		wantImages int
	}{
		{
			name:       "top-level comment",
			data:       models.CommentCreate{Content: "first", Post: 3},
			wantParent: nil,
		},
		{
			name: "reply with image",
			data: models.CommentCreate{
				Content:  "reply",
				Post:     3,
				ParentID: 12,
				Images:   []models.File{{Name: "r.png", Content: bytes.NewReader(pngBytes())}},
			},
			wantParent: []string{"12"},
			wantImages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, backend := newTestRequester(t)
			backend.respond(http.StatusCreated, `{"message":"评论创建成功","comment":{"id":77}}`)

			resp, err := NewCommentsAPI(client).CreateComment(context.Background(), tt.data)

			require.NoError(t, err)
			assert.Equal(t, int64(77), resp.Comment.ID)

			req := backend.last(t)
			assert.Equal(t, "/api/comments/comments/create/", req.Path)
			assert.Equal(t, []string{tt.data.Content}, req.Fields["content"])
			assert.Equal(t, []string{"3"}, req.Fields["post"])
			assert.Equal(t, tt.wantParent, req.Fields["parent_id"])
			assert.Len(t, req.Files["images"], tt.wantImages)
		})
	}
}

func TestCommentsAPI_ReadEndpoints(t *testing.T) {
	client, backend := newTestRequester(t)
	comments := NewCommentsAPI(client)
	ctx := context.Background()

	backend.respond(http.StatusOK, `{"count":1,"results":[{"id":1,"content":"c"}]}`)

	list, err := comments.GetCommentList(ctx, 3, models.PageParams{Page: 2})
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "/api/comments/posts/3/comments/", backend.last(t).Path)
	assert.Equal(t, "2", backend.last(t).Query.Get("page"))

	_, err = comments.GetCommentReplies(ctx, 1, models.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, "/api/comments/comments/1/replies/", backend.last(t).Path)

	_, err = comments.GetUserComments(ctx, models.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, "/api/comments/user/comments/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"id":1,"content":"c","like_count":3}`)
	detail, err := comments.GetCommentDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.LikeCount)
	assert.Equal(t, "/api/comments/comments/1/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"results":[{"id":5}]}`)
	found, err := comments.SearchComments(ctx, "golang")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "/api/comments/comments/search/", backend.last(t).Path)
	assert.Equal(t, "golang", backend.last(t).Query.Get("q"))

	_, err = comments.SearchComments(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestCommentsAPI_Mutations(t *testing.T) {
	client, backend := newTestRequester(t)
	comments := NewCommentsAPI(client)
	ctx := context.Background()
	content := "edited"

	backend.respond(http.StatusOK, `{"message":"评论更新成功","comment":{"id":1,"content":"edited"}}`)
	updated, err := comments.UpdateComment(ctx, 1, models.CommentUpdate{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Comment.Content)
	assert.Equal(t, http.MethodPut, backend.last(t).Method)
	assert.Equal(t, "/api/comments/comments/1/update/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"message":"评论删除成功"}`)
	_, err = comments.DeleteComment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, backend.last(t).Method)
	assert.Equal(t, "/api/comments/comments/1/delete/", backend.last(t).Path)

	backend.respond(http.StatusOK, `{"message":"点赞成功","like_count":1,"is_liked":true}`)
	liked, err := comments.LikeComment(ctx, 1)
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, "/api/comments/comments/1/like/", backend.last(t).Path)

	backend.respond(http.StatusCreated, `{"message":"举报成功，我们会尽快处理"}`)
	_, err = comments.ReportComment(ctx, 1, models.ReportData{Reason: "abuse", Description: "rude"})
	require.NoError(t, err)
	req := backend.last(t)
	assert.Equal(t, "/api/comments/comments/1/report/", req.Path)
	assert.Equal(t, map[string]any{"reason": "abuse", "description": "rude"}, req.JSON)
}
