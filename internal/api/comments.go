package api

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// CommentsAPI wraps the /comments endpoints.
type CommentsAPI struct {
	r Requester
}

func NewCommentsAPI(r Requester) *CommentsAPI {
	return &CommentsAPI{r: r}
}

func (c *CommentsAPI) GetCommentList(ctx context.Context, postID int64, page models.PageParams) (models.Page[models.Comment], error) {
	return get[models.Page[models.Comment]](ctx, c.r, itemPath("/comments/posts/%d/comments/", postID), withPage(page))
}

// CreateComment sends the comment as multipart form data. A zero ParentID
// makes it a top-level comment.
func (c *CommentsAPI) CreateComment(ctx context.Context, data models.CommentCreate) (models.CommentResponse, error) {
	form := adapter.NewForm().
		AddField("content", data.Content).
		AddField("post", formatID(data.Post))
	if data.ParentID != 0 {
		form.AddField("parent_id", formatID(data.ParentID))
	}
	addBool(form, "is_anonymous", data.IsAnonymous)

	images, err := fileParts(data.Images)
	if err != nil {
		return models.CommentResponse{}, err
	}
	form.AddFiles("images", images...)

	return post[models.CommentResponse](ctx, c.r, "/comments/comments/create/", nil, adapter.WithMultipart(form))
}

func (c *CommentsAPI) GetCommentDetail(ctx context.Context, commentID int64) (models.Comment, error) {
	return get[models.Comment](ctx, c.r, itemPath("/comments/comments/%d/", commentID))
}

func (c *CommentsAPI) UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.CommentResponse, error) {
	return call[models.CommentResponse](ctx, c.r, http.MethodPut, itemPath("/comments/comments/%d/update/", commentID), update)
}

func (c *CommentsAPI) DeleteComment(ctx context.Context, commentID int64) (models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, c.r, http.MethodDelete, itemPath("/comments/comments/%d/delete/", commentID), nil)
}

func (c *CommentsAPI) LikeComment(ctx context.Context, commentID int64) (models.LikeResponse, error) {
	return post[models.LikeResponse](ctx, c.r, itemPath("/comments/comments/%d/like/", commentID), nil)
}

func (c *CommentsAPI) ReportComment(ctx context.Context, commentID int64, report models.ReportData) (models.ReportResponse, error) {
	return post[models.ReportResponse](ctx, c.r, itemPath("/comments/comments/%d/report/", commentID), report)
}

func (c *CommentsAPI) GetCommentReplies(ctx context.Context, commentID int64, page models.PageParams) (models.Page[models.Comment], error) {
	return get[models.Page[models.Comment]](ctx, c.r, itemPath("/comments/comments/%d/replies/", commentID), withPage(page))
}

// GetUserComments lists the comments written by the current user.
func (c *CommentsAPI) GetUserComments(ctx context.Context, page models.PageParams) (models.Page[models.Comment], error) {
	return get[models.Page[models.Comment]](ctx, c.r, "/comments/user/comments/", withPage(page))
}

func (c *CommentsAPI) SearchComments(ctx context.Context, q string) ([]models.Comment, error) {
	if q == "" {
		return nil, ErrEmptyQuery
	}
	res, err := get[models.Results[models.Comment]](ctx, c.r, "/comments/comments/search/", byQuery(q))
	return res.Results, err
}
